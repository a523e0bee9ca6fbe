package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/idrealestat/aqariai-crm/internal/dtos"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

type FinanceController struct {
	svc services.FinanceService
}

func NewFinanceController(s services.FinanceService) *FinanceController {
	return &FinanceController{svc: s}
}

// -----------------------------------------------------------------------------
// POST /api/v1/finance/evaluate
// -----------------------------------------------------------------------------
func (c *FinanceController) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.FinanceEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Bank, salary, price and term are required", nil, err,
		)
		return
	}

	result, err := c.svc.Evaluate(r.Context(), services.FinanceInput{
		Salary:             req.Salary,
		CurrentMonthlyDebt: req.CurrentMonthlyDebt,
		OtherMonthlyDebt:   req.OtherMonthlyDebt,
		PropertyPrice:      req.PropertyPrice,
		DownPayment:        req.DownPayment,
		TermYears:          req.TermYears,
	}, req.Bank)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// GET /api/v1/finance/rates
// -----------------------------------------------------------------------------
func (c *FinanceController) RatesHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.svc.Rates(r.Context()))
}
