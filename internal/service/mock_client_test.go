package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

// mockBudgetClient is a mock for BudgetClient.
type mockBudgetClient struct {
	mock.Mock
}

func (m *mockBudgetClient) GetBudgetDetail(ctx context.Context, budgetName string) (*ynab.BudgetDetail, error) {
	args := m.Called(ctx, budgetName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ynab.BudgetDetail), args.Error(1)
}

func (m *mockBudgetClient) GetAccounts(ctx context.Context, budgetID uuid.UUID) ([]ynab.Account, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ynab.Account), args.Error(1)
}

func (m *mockBudgetClient) GetTransactions(ctx context.Context, budgetID uuid.UUID, sinceDate *time.Time) ([]ynab.TransactionDetail, error) {
	args := m.Called(ctx, budgetID, sinceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ynab.TransactionDetail), args.Error(1)
}

func (m *mockBudgetClient) GetCategoryByID(ctx context.Context, budgetID, categoryID uuid.UUID) (*ynab.Category, error) {
	args := m.Called(ctx, budgetID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ynab.Category), args.Error(1)
}
