package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

const (
	// debtBurdenCap is the share of salary a monthly installment may
	// consume under bank policy.
	debtBurdenCap = 0.33

	ratesFetchTimeout = 4 * time.Second
	rateJitterPercent = 0.25
)

// ------------------------------------------------------------------
// Pure calculation
// ------------------------------------------------------------------

type FinanceInput struct {
	Salary             float64
	CurrentMonthlyDebt float64
	OtherMonthlyDebt   float64
	PropertyPrice      float64
	DownPayment        float64
	TermYears          int
}

type FinanceResult struct {
	Bank               models.BankPolicy `json:"bank"`
	FinancingAmount    float64           `json:"financing_amount"`
	MonthlyInstallment float64           `json:"monthly_installment"`
	MaxMonthlyPayment  float64           `json:"max_monthly_payment"`
	MaxFinancing       float64           `json:"max_financing"`
	Eligible           bool              `json:"eligible"`
	Reasons            []string          `json:"reasons,omitempty"`
}

// Calculate runs the standard annuity math against one bank's policy.
// Every failed eligibility rule contributes a reason; rules are not
// short-circuited.
func Calculate(in FinanceInput, bank models.BankPolicy) FinanceResult {
	monthlyRate := bank.AnnualRatePercent / 100 / 12
	termMonths := in.TermYears * 12

	maxMonthlyPayment := in.Salary*debtBurdenCap - in.CurrentMonthlyDebt - in.OtherMonthlyDebt
	if maxMonthlyPayment < 0 {
		maxMonthlyPayment = 0
	}

	financingAmount := in.PropertyPrice - in.DownPayment
	if financingAmount < 0 {
		financingAmount = 0
	}

	maxFinancing := math.Min(
		annuityPrincipal(maxMonthlyPayment, monthlyRate, termMonths),
		math.Min(bank.MaxFinancingAmount, financingAmount),
	)

	installment := annuityPayment(financingAmount, monthlyRate, termMonths)

	var reasons []string
	if in.Salary < bank.MinSalary {
		reasons = append(reasons, fmt.Sprintf("Salary is below the bank minimum of %.0f SAR", bank.MinSalary))
	}
	if in.Salary > 0 && installment/in.Salary > debtBurdenCap {
		reasons = append(reasons, fmt.Sprintf("Monthly installment of %.0f SAR exceeds %d%% of salary", installment, int(debtBurdenCap*100)))
	}
	if financingAmount > bank.MaxFinancingAmount {
		reasons = append(reasons, fmt.Sprintf("Financing amount of %.0f SAR exceeds the bank cap of %.0f SAR", financingAmount, bank.MaxFinancingAmount))
	}

	return FinanceResult{
		Bank:               bank,
		FinancingAmount:    financingAmount,
		MonthlyInstallment: installment,
		MaxMonthlyPayment:  maxMonthlyPayment,
		MaxFinancing:       maxFinancing,
		Eligible:           len(reasons) == 0,
		Reasons:            reasons,
	}
}

// annuityPayment is the standard amortization formula: the fixed monthly
// payment that repays principal over termMonths at monthlyRate.
func annuityPayment(principal, monthlyRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * monthlyRate * factor / (factor - 1)
}

// annuityPrincipal inverts annuityPayment: the largest principal a fixed
// monthly payment can service.
func annuityPrincipal(payment, monthlyRate float64, termMonths int) float64 {
	if payment <= 0 || termMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(termMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return payment * (factor - 1) / (monthlyRate * factor)
}

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type FinanceService interface {
	// Evaluate runs the calculator against the named bank's current
	// policy from the cached rates snapshot.
	Evaluate(ctx context.Context, in FinanceInput, bankName string) (*FinanceResult, error)

	Rates(ctx context.Context) models.BankRates

	// RefreshRates re-fetches the rates feed; on any failure the cache
	// falls back to simulated policies instead of surfacing an error.
	RefreshRates(ctx context.Context)
}

type financeService struct {
	ratesURL string
	client   *http.Client

	mu    sync.RWMutex
	rates models.BankRates
}

func NewFinanceService(ratesURL string) FinanceService {
	s := &financeService{
		ratesURL: ratesURL,
		client:   &http.Client{},
	}
	// start from the simulated snapshot so callers never see an empty
	// cache before the first refresh completes
	s.rates = simulatedRates()
	return s
}

func (s *financeService) Evaluate(ctx context.Context, in FinanceInput, bankName string) (*FinanceResult, error) {
	rates := s.Rates(ctx)

	for _, bank := range rates.Banks {
		if strings.EqualFold(bank.Name, bankName) {
			result := Calculate(in, bank)
			return &result, nil
		}
	}
	return nil, &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    fmt.Sprintf("Unknown bank %q", bankName),
	}
}

func (s *financeService) Rates(_ context.Context) models.BankRates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates
}

func (s *financeService) RefreshRates(ctx context.Context) {
	banks, err := s.fetchRates(ctx)
	if err != nil {
		utils.Logger.WithError(err).Warn("Bank-rate fetch failed; using simulated rates")
		s.setRates(simulatedRates())
		return
	}
	s.setRates(models.BankRates{
		Banks:     banks,
		Simulated: false,
		FetchedAt: time.Now().UTC(),
	})
	utils.Logger.Infof("Refreshed bank rates (%d banks)", len(banks))
}

func (s *financeService) setRates(r models.BankRates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates = r
}

func (s *financeService) fetchRates(ctx context.Context) ([]models.BankPolicy, error) {
	if s.ratesURL == "" {
		return nil, fmt.Errorf("no rates URL configured: %w", utils.ErrExternalServiceFailure)
	}

	ctx, cancel := context.WithTimeout(ctx, ratesFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ratesURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates feed returned %d: %w", resp.StatusCode, utils.ErrExternalServiceFailure)
	}

	var banks []models.BankPolicy
	if err := json.NewDecoder(resp.Body).Decode(&banks); err != nil {
		return nil, err
	}
	if len(banks) == 0 {
		return nil, fmt.Errorf("rates feed returned no banks: %w", utils.ErrExternalServiceFailure)
	}
	return banks, nil
}

// baselinePolicies are the built-in bank terms the simulator jitters
// around when the feed is unreachable.
var baselinePolicies = []models.BankPolicy{
	{Name: "Al Rajhi", AnnualRatePercent: 6.5, MinSalary: 5000, MaxFinancingAmount: 3_000_000},
	{Name: "SNB", AnnualRatePercent: 6.2, MinSalary: 6000, MaxFinancingAmount: 5_000_000},
	{Name: "Riyad Bank", AnnualRatePercent: 6.8, MinSalary: 4500, MaxFinancingAmount: 2_500_000},
	{Name: "Alinma", AnnualRatePercent: 7.0, MinSalary: 4000, MaxFinancingAmount: 2_000_000},
}

func simulatedRates() models.BankRates {
	banks := make([]models.BankPolicy, len(baselinePolicies))
	copy(banks, baselinePolicies)
	for i := range banks {
		// bounded jitter of at most ±rateJitterPercent points
		banks[i].AnnualRatePercent += (rand.Float64()*2 - 1) * rateJitterPercent
	}
	return models.BankRates{
		Banks:     banks,
		Simulated: true,
		FetchedAt: time.Now().UTC(),
	}
}
