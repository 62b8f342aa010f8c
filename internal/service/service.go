package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

// BudgetClient is the slice of the budgeting-service client the report
// services consume. The real implementation is ynab.Client.
type BudgetClient interface {
	GetBudgetDetail(ctx context.Context, budgetName string) (*ynab.BudgetDetail, error)
	GetAccounts(ctx context.Context, budgetID uuid.UUID) ([]ynab.Account, error)
	GetTransactions(ctx context.Context, budgetID uuid.UUID, sinceDate *time.Time) ([]ynab.TransactionDetail, error)
	GetCategoryByID(ctx context.Context, budgetID, categoryID uuid.UUID) (*ynab.Category, error)
}

// Config carries the report-shaping tables that used to be hard-coded in the
// report generators: which category groups to leave out of planning, how
// account-name prefixes map to display names, an optional explicit
// account-to-group table, and payee cleanup aliases for the spend report.
type Config struct {
	SkipCategoryGroupIDs []uuid.UUID
	GroupDisplayNames    map[string]string
	AccountGroupMapping  map[string]string
	PayeeAliases         map[string]string
}

// Service holds all report services.
type Service struct {
	Planning   *PlanningService
	Historical *HistoricalService
	Spend      *SpendService
	Summary    *SummaryService
}

// NewService creates a Service backed by the given budgeting-service client.
func NewService(client BudgetClient, cfg Config) *Service {
	return &Service{
		Planning:   NewPlanningService(client, cfg.SkipCategoryGroupIDs),
		Historical: NewHistoricalService(client, cfg.GroupDisplayNames, cfg.AccountGroupMapping),
		Spend:      NewSpendService(client, cfg.PayeeAliases),
		Summary:    NewSummaryService(client),
	}
}
