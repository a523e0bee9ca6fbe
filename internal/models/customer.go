package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CustomerCategory string

const (
	CategoryOwner  CustomerCategory = "owner"
	CategoryBuyer  CustomerCategory = "buyer"
	CategoryLessor CustomerCategory = "lessor"
	CategoryTenant CustomerCategory = "tenant"
	CategoryOther  CustomerCategory = "other"
)

// CategoryForRole maps the marketplace user role captured on an accepted
// offer to a CRM customer category.
func CategoryForRole(role string) CustomerCategory {
	switch role {
	case "seller":
		return CategoryOwner
	case "buyer":
		return CategoryBuyer
	case "lessor":
		return CategoryLessor
	case "tenant":
		return CategoryTenant
	default:
		return CategoryOther
	}
}

type CustomerStatus string

const (
	CustomerStatusNew         CustomerStatus = "new"
	CustomerStatusContacted   CustomerStatus = "contacted"
	CustomerStatusNegotiating CustomerStatus = "negotiating"
	CustomerStatusClosed      CustomerStatus = "closed"
	CustomerStatusLost        CustomerStatus = "lost"
)

// Customer is the long-lived CRM aggregate. Phone is the identity key:
// every flow that touches the same phone number lands on the same record.
// CustomData is an opaque snapshot of whatever raw payload created the
// customer and must round-trip byte-for-byte.
type Customer struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	Category   CustomerCategory `json:"category"`
	Source     string           `json:"source"`
	City       string           `json:"city"`
	District   string           `json:"district"`
	Budget     float64          `json:"budget"`
	Notes      string           `json:"notes"`
	Tags       []string         `json:"tags"`
	Status     CustomerStatus   `json:"status"`
	CustomData json.RawMessage  `json:"custom_data,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
