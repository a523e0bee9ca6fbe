package dtos

type FinanceEvaluateRequest struct {
	Bank               string  `json:"bank" validate:"required"`
	Salary             float64 `json:"salary" validate:"required,gt=0"`
	CurrentMonthlyDebt float64 `json:"current_monthly_debt" validate:"gte=0"`
	OtherMonthlyDebt   float64 `json:"other_monthly_debt" validate:"gte=0"`
	PropertyPrice      float64 `json:"property_price" validate:"required,gt=0"`
	DownPayment        float64 `json:"down_payment" validate:"gte=0"`
	TermYears          int     `json:"term_years" validate:"required,gt=0,lte=35"`
}
