package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

var alRajhi = models.BankPolicy{
	Name:               "Al Rajhi",
	AnnualRatePercent:  6.5,
	MinSalary:          5000,
	MaxFinancingAmount: 3_000_000,
}

func TestCalculateEligibleCase(t *testing.T) {
	in := FinanceInput{
		Salary:        15_000,
		PropertyPrice: 500_000,
		DownPayment:   100_000,
		TermYears:     25,
	}

	res := Calculate(in, alRajhi)

	require.True(t, res.Eligible)
	require.Empty(t, res.Reasons)
	require.Equal(t, 400_000.0, res.FinancingAmount)
	require.InDelta(t, 4950, res.MaxMonthlyPayment, 0.01)

	// 400k over 25 years at 6.5% lands around 2700/month
	require.Greater(t, res.MonthlyInstallment, 2000.0)
	require.Less(t, res.MonthlyInstallment, 3500.0)

	require.LessOrEqual(t, res.MaxFinancing, res.FinancingAmount)
}

func TestCalculateCollectsEveryFailedRule(t *testing.T) {
	in := FinanceInput{
		Salary:        4000,
		PropertyPrice: 5_000_000,
		TermYears:     20,
	}

	res := Calculate(in, alRajhi)

	// rules are checked independently; all three fail here
	require.False(t, res.Eligible)
	require.Len(t, res.Reasons, 3)
}

func TestCalculateExistingDebtShrinksHeadroom(t *testing.T) {
	in := FinanceInput{
		Salary:             10_000,
		CurrentMonthlyDebt: 2000,
		OtherMonthlyDebt:   5000,
		PropertyPrice:      300_000,
		DownPayment:        50_000,
		TermYears:          15,
	}

	res := Calculate(in, alRajhi)
	require.Equal(t, 0.0, res.MaxMonthlyPayment)
	require.Equal(t, 0.0, res.MaxFinancing)
}

func TestCalculateZeroRate(t *testing.T) {
	bank := models.BankPolicy{Name: "Interest Free", MinSalary: 1000, MaxFinancingAmount: 1_000_000}
	in := FinanceInput{Salary: 10_000, PropertyPrice: 120_000, TermYears: 10}

	res := Calculate(in, bank)
	require.InDelta(t, 1000, res.MonthlyInstallment, 0.01)
}

func TestFinanceServiceStartsWithSimulatedRates(t *testing.T) {
	svc := NewFinanceService("")

	rates := svc.Rates(context.Background())
	require.True(t, rates.Simulated)
	require.Len(t, rates.Banks, 4)
	for _, bank := range rates.Banks {
		require.Greater(t, bank.AnnualRatePercent, 5.0)
		require.Less(t, bank.AnnualRatePercent, 8.0)
	}
}

func TestFinanceServiceEvaluateMatchesBankCaseInsensitively(t *testing.T) {
	svc := NewFinanceService("")

	in := FinanceInput{Salary: 20_000, PropertyPrice: 800_000, DownPayment: 200_000, TermYears: 20}
	res, err := svc.Evaluate(context.Background(), in, "al rajhi")
	require.NoError(t, err)
	require.Equal(t, "Al Rajhi", res.Bank.Name)
}

func TestFinanceServiceEvaluateUnknownBank(t *testing.T) {
	svc := NewFinanceService("")

	_, err := svc.Evaluate(context.Background(), FinanceInput{}, "No Such Bank")
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestRefreshRatesUsesFeedWhenHealthy(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Test Bank","annual_rate_percent":5.5,"min_salary":3000,"max_financing_amount":1000000}]`))
	}))
	defer feed.Close()

	svc := NewFinanceService(feed.URL)
	svc.RefreshRates(context.Background())

	rates := svc.Rates(context.Background())
	require.False(t, rates.Simulated)
	require.Len(t, rates.Banks, 1)
	require.Equal(t, "Test Bank", rates.Banks[0].Name)
	require.Equal(t, 5.5, rates.Banks[0].AnnualRatePercent)
}

func TestRefreshRatesFallsBackOnFeedFailure(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer feed.Close()

	svc := NewFinanceService(feed.URL)
	svc.RefreshRates(context.Background())

	rates := svc.Rates(context.Background())
	require.True(t, rates.Simulated)
	require.Len(t, rates.Banks, 4)
}
