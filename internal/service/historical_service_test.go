package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

func day(yearMonthDay string) time.Time {
	d, err := time.Parse("2006-01-02", yearMonthDay)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(accountName, date string, amount ynab.Milliunits) ynab.TransactionDetail {
	return ynab.TransactionDetail{
		ID:          uuid.Must(uuid.NewV4()),
		Date:        ynab.Date{Time: day(date)},
		Amount:      amount,
		AccountName: accountName,
	}
}

func newHistoricalClient(t *testing.T) (*mockBudgetClient, uuid.UUID) {
	t.Helper()
	budgetID := uuid.Must(uuid.NewV4())
	budget := &ynab.BudgetDetail{ID: budgetID, Name: "Household"}

	accounts := []ynab.Account{
		{ID: uuid.Must(uuid.NewV4()), Name: "CASH Checking"},
		{ID: uuid.Must(uuid.NewV4()), Name: "CASH Savings"},
		{ID: uuid.Must(uuid.NewV4()), Name: "RET 401k"},
		{ID: uuid.Must(uuid.NewV4()), Name: "OLD Card", Closed: true},
	}

	transactions := []ynab.TransactionDetail{
		txn("CASH Checking", "2025-01-01", 100_000),
		txn("CASH Savings", "2025-01-10", 200_000),
		txn("CASH Checking", "2025-01-15", -50_000),
		txn("CASH Checking", "2025-03-01", 25_000),
		txn("RET 401k", "2025-01-05", 10_000),
		txn("OLD Card", "2025-01-02", 999_000),
	}

	client := &mockBudgetClient{}
	client.On("GetBudgetDetail", mock.Anything, "Household").Return(budget, nil)
	client.On("GetAccounts", mock.Anything, budgetID).Return(accounts, nil)
	client.On("GetTransactions", mock.Anything, budgetID, mock.Anything).Return(transactions, nil)
	return client, budgetID
}

func newHistoricalService(client *mockBudgetClient) *HistoricalService {
	svc := NewHistoricalService(client, map[string]string{"CASH": "Cash", "RET": "Retirement"}, nil)
	svc.now = func() time.Time { return day("2025-06-01") }
	return svc
}

// -- historical report --

func TestHistoricalBuild_MergedGroupSeries(t *testing.T) {
	client, _ := newHistoricalClient(t)
	svc := newHistoricalService(client)

	report, err := svc.Build(context.Background(), "Household", IntervalWeekly)

	assert.NoError(t, err)
	assert.Equal(t, "Household", report.BudgetName)

	// Retirement has a single point and is dropped; the closed account never
	// enters a group.
	assert.Len(t, report.Groups, 1)
	cash := report.Groups[0]
	assert.Equal(t, "Cash", cash.Name)
	assert.Len(t, cash.Accounts, 2)

	// The group balance is recomputed from the merged deltas in date order,
	// not summed from per-account balances.
	assert.Len(t, cash.AllPoints, 4)
	assert.True(t, cash.AllPoints[0].RunningBalance.Equal(amount("100")))
	assert.True(t, cash.AllPoints[1].RunningBalance.Equal(amount("300")))
	assert.True(t, cash.AllPoints[2].RunningBalance.Equal(amount("250")))
	assert.True(t, cash.AllPoints[3].RunningBalance.Equal(amount("275")))
}

func TestHistoricalBuild_WeeklySeriesEndsAtCurrentBalance(t *testing.T) {
	client, _ := newHistoricalClient(t)
	svc := newHistoricalService(client)

	report, err := svc.Build(context.Background(), "Household", IntervalWeekly)

	assert.NoError(t, err)
	cash := report.Groups[0]
	last := cash.Series[len(cash.Series)-1]
	assert.Equal(t, day("2025-03-01"), last.Date)
	assert.True(t, last.Balance.Equal(amount("275")))

	assert.True(t, cash.Bounds.Min.Equal(amount("0")))
	assert.True(t, cash.Bounds.Max.Equal(amount("1000")))
	assert.True(t, cash.Bounds.Step.Equal(amount("100")))
}

func TestHistoricalBuild_MonthlyInterval(t *testing.T) {
	client, _ := newHistoricalClient(t)
	svc := newHistoricalService(client)

	report, err := svc.Build(context.Background(), "Household", IntervalMonthly)

	assert.NoError(t, err)
	cash := report.Groups[0]
	assert.Len(t, cash.Series, 3)
	assert.Equal(t, day("2025-01-01"), cash.Series[0].Date)
	assert.Equal(t, day("2025-03-01"), cash.Series[2].Date)
	assert.True(t, cash.Series[2].Balance.Equal(amount("275")))
}

func TestHistoricalBuild_ExplicitMapping(t *testing.T) {
	client, _ := newHistoricalClient(t)
	svc := NewHistoricalService(client, nil, map[string]string{
		"CASH Checking": "Liquid",
		"CASH Savings":  "Liquid",
	})
	svc.now = func() time.Time { return day("2025-06-01") }

	report, err := svc.Build(context.Background(), "Household", IntervalWeekly)

	assert.NoError(t, err)
	assert.Len(t, report.Groups, 1)
	assert.Equal(t, "Liquid", report.Groups[0].Name)
	assert.Len(t, report.Groups[0].AllPoints, 4)
}

func TestHistoricalBuild_TrimsOldPoints(t *testing.T) {
	client, _ := newHistoricalClient(t)
	svc := newHistoricalService(client)
	svc.now = func() time.Time { return day("2026-02-01") }

	// Only the 2025-03-01 point survives the trailing window, leaving the
	// group with a single point, so it is dropped entirely.
	report, err := svc.Build(context.Background(), "Household", IntervalWeekly)

	assert.NoError(t, err)
	assert.Empty(t, report.Groups)
}

func TestHistoricalBuild_FetchErrorAbortsBuild(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	client := &mockBudgetClient{}
	client.On("GetBudgetDetail", mock.Anything, "Household").Return(&ynab.BudgetDetail{ID: budgetID, Name: "Household"}, nil)
	client.On("GetAccounts", mock.Anything, budgetID).Return(nil, errors.New("upstream down"))
	client.On("GetTransactions", mock.Anything, budgetID, mock.Anything).Return([]ynab.TransactionDetail{}, nil)

	svc := NewHistoricalService(client, nil, nil)
	report, err := svc.Build(context.Background(), "Household", IntervalWeekly)

	assert.Nil(t, report)
	assert.EqualError(t, err, "upstream down")
}

func TestHistoricalBuild_InterestAdjustment(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	budget := &ynab.BudgetDetail{ID: budgetID, Name: "Household"}
	accounts := []ynab.Account{{
		ID:                uuid.Must(uuid.NewV4()),
		Name:              "LOAN House",
		DebtInterestRates: ynab.PeriodicValues{"2024-01-01": 12_000},
	}}
	transactions := []ynab.TransactionDetail{
		txn("LOAN House", "2025-01-01", -1_200_000),
		txn("LOAN House", "2025-02-01", 100_000),
	}

	client := &mockBudgetClient{}
	client.On("GetBudgetDetail", mock.Anything, "Household").Return(budget, nil)
	client.On("GetAccounts", mock.Anything, budgetID).Return(accounts, nil)
	client.On("GetTransactions", mock.Anything, budgetID, mock.Anything).Return(transactions, nil)

	svc := NewHistoricalService(client, map[string]string{"LOAN": "Loans"}, nil)
	svc.now = func() time.Time { return day("2025-06-01") }

	report, err := svc.Build(context.Background(), "Household", IntervalWeekly)

	assert.NoError(t, err)
	loans := report.Groups[0]
	// 12% annual on a 1200 balance charges 12 for the month, so the 100
	// payment only moves the balance by 88.
	assert.True(t, loans.AllPoints[0].RunningBalance.Equal(amount("-1200")))
	assert.True(t, loans.AllPoints[1].RunningBalance.Equal(amount("-1112")))
}
