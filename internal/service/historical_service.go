package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-reports/internal/ledger"
	"github.com/carson-networks/budget-reports/internal/timeseries"
	"github.com/carson-networks/budget-reports/internal/ynab"
)

// trailingWindow is how far back the historical report reaches: a year plus a
// two-week buffer so the first resampled week has a full lookback.
const trailingWindow = 379 * 24 * time.Hour

// HistoricalService builds the account-performance report: running balances
// per account and per account group, resampled for charting.
type HistoricalService struct {
	client       BudgetClient
	displayNames map[string]string
	mapping      map[string]string
	now          func() time.Time
}

// NewHistoricalService creates a new HistoricalService. When mapping is
// non-empty, accounts are grouped by the explicit account-to-group table;
// otherwise by the first token of the account name, displayed via
// displayNames.
func NewHistoricalService(client BudgetClient, displayNames, mapping map[string]string) *HistoricalService {
	return &HistoricalService{
		client:       client,
		displayNames: displayNames,
		mapping:      mapping,
		now:          time.Now,
	}
}

// Build assembles the historical report for a budget. The interval selects
// weekly averaging or monthly interpolation for the chartable series.
func (s *HistoricalService) Build(ctx context.Context, budgetName string, interval Interval) (*HistoricalReport, error) {
	budget, err := s.client.GetBudgetDetail(ctx, budgetName)
	if err != nil {
		return nil, err
	}

	var (
		accounts     []ynab.Account
		transactions []ynab.TransactionDetail
	)
	fetch, fetchCtx := errgroup.WithContext(ctx)
	fetch.Go(func() error {
		var err error
		accounts, err = s.client.GetAccounts(fetchCtx, budget.ID)
		return err
	})
	fetch.Go(func() error {
		var err error
		transactions, err = s.client.GetTransactions(fetchCtx, budget.ID, nil)
		return err
	})
	if err := fetch.Wait(); err != nil {
		return nil, err
	}

	open := make(map[string]ynab.Account)
	names := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if account.Closed || account.Deleted {
			continue
		}
		open[account.Name] = account
		names = append(names, account.Name)
	}

	deltasByAccount := make(map[string][]ledger.Delta)
	for _, transaction := range transactions {
		if _, ok := open[transaction.AccountName]; !ok {
			continue
		}
		deltasByAccount[transaction.AccountName] = append(deltasByAccount[transaction.AccountName], ledger.Delta{
			Date:   transaction.Date.Time,
			Amount: transaction.Amount.Decimal(),
		})
	}

	var groups []ledger.Group
	if len(s.mapping) > 0 {
		groups = ledger.GroupByMapping(names, s.mapping)
	} else {
		groups = ledger.GroupByPrefix(names, s.displayNames)
	}

	cutoff := s.now().Add(-trailingWindow)

	report := &HistoricalReport{BudgetName: budget.Name}
	for _, group := range groups {
		historicalGroup, err := s.buildGroup(group, open, deltasByAccount, cutoff, interval)
		if err != nil {
			return nil, err
		}
		// Grouping is total over its mapping; placeholder groups with no
		// usable series are filtered out here instead.
		if len(historicalGroup.AllPoints) <= 1 {
			continue
		}
		report.Groups = append(report.Groups, historicalGroup)
	}

	return report, nil
}

func (s *HistoricalService) buildGroup(group ledger.Group, accounts map[string]ynab.Account, deltasByAccount map[string][]ledger.Delta, cutoff time.Time, interval Interval) (HistoricalGroup, error) {
	historicalGroup := HistoricalGroup{Name: group.Name}

	series := make([][]ledger.BalancePoint, 0, len(group.AccountNames))
	for _, name := range group.AccountNames {
		account := accounts[name]
		points, err := ledger.Accumulate(
			deltasByAccount[name],
			parseSchedule(account.DebtInterestRates),
			parseSchedule(account.DebtEscrowAmounts),
		)
		if err != nil {
			return HistoricalGroup{}, fmt.Errorf("account %s: %w", name, err)
		}
		series = append(series, points)
		historicalGroup.Accounts = append(historicalGroup.Accounts, HistoricalAccount{
			Name:   name,
			Points: ledger.TrimBefore(points, cutoff),
		})
	}

	historicalGroup.AllPoints = ledger.TrimBefore(ledger.AccumulateMerged(series...), cutoff)

	switch interval {
	case IntervalMonthly:
		historicalGroup.Series = timeseries.InterpolateMonthly(historicalGroup.AllPoints)
	default:
		historicalGroup.Series = timeseries.AverageWeekly(historicalGroup.AllPoints)
	}

	if len(historicalGroup.Series) > 0 {
		minBalance := historicalGroup.Series[0].Balance
		maxBalance := minBalance
		for _, point := range historicalGroup.Series[1:] {
			if point.Balance.LessThan(minBalance) {
				minBalance = point.Balance
			}
			if point.Balance.GreaterThan(maxBalance) {
				maxBalance = point.Balance
			}
		}
		historicalGroup.Bounds = timeseries.ComputeBounds(minBalance, maxBalance)
	}

	return historicalGroup, nil
}

// parseSchedule converts a date-keyed milliunit table into a ledger schedule.
// Malformed dates are skipped rather than failing the build; the upstream
// service owns the key format.
func parseSchedule(values ynab.PeriodicValues) []ledger.PeriodicValue {
	if len(values) == 0 {
		return nil
	}
	schedule := make([]ledger.PeriodicValue, 0, len(values))
	for key, value := range values {
		date, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		schedule = append(schedule, ledger.PeriodicValue{Date: date, Value: value.Decimal()})
	}
	return schedule
}
