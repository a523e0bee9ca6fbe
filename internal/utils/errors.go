package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidPhone     = errors.New("invalid_phone")
	ErrPhoneRequired    = errors.New("phone_required")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrListingNotFound  = errors.New("listing_not_found")
	ErrLeadNotFound     = errors.New("lead_not_found")
	ErrColumnNotFound   = errors.New("column_not_found")
	ErrIndexOutOfRange  = errors.New("index_out_of_range")

	// For external service failures (bank-rate source)
	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
