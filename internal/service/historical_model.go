package service

import (
	"github.com/carson-networks/budget-reports/internal/ledger"
	"github.com/carson-networks/budget-reports/internal/timeseries"
)

// Interval selects the resampling mode of the historical report.
type Interval string

const (
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// HistoricalReport is the account-performance report model: one entry per
// account group with its raw and resampled running-balance series.
type HistoricalReport struct {
	BudgetName string
	Groups     []HistoricalGroup
}

// HistoricalGroup is one account group's series. AllPoints is the group's own
// running balance recomputed from the merged member deltas, not a sum of the
// per-account balances.
type HistoricalGroup struct {
	Name      string
	Accounts  []HistoricalAccount
	AllPoints []ledger.BalancePoint
	Series    []timeseries.Point
	Bounds    timeseries.Bounds
}

// HistoricalAccount is one member account's running-balance series.
type HistoricalAccount struct {
	Name   string
	Points []ledger.BalancePoint
}
