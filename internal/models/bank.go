package models

import "time"

// BankPolicy is one bank's mortgage terms as served by the rates feed.
type BankPolicy struct {
	Name               string  `json:"name"`
	AnnualRatePercent  float64 `json:"annual_rate_percent"`
	MinSalary          float64 `json:"min_salary"`
	MaxFinancingAmount float64 `json:"max_financing_amount"`
}

// BankRates is the cached snapshot of the rates feed, with provenance so
// callers can tell live data from the simulated fallback.
type BankRates struct {
	Banks     []BankPolicy `json:"banks"`
	Simulated bool         `json:"simulated"`
	FetchedAt time.Time    `json:"fetched_at"`
}
