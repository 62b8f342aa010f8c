package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reports/internal/goal"
	"github.com/carson-networks/budget-reports/internal/ynab"
)

// SummaryService builds the small single-value reports: account balances,
// funded progress, and monthly activity.
type SummaryService struct {
	client BudgetClient
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(client BudgetClient) *SummaryService {
	return &SummaryService{client: client}
}

// AccountBalances lists the balances of all open accounts whose names
// contain accountName, case-insensitively.
func (s *SummaryService) AccountBalances(ctx context.Context, budgetName, accountName string) (*BalancesReport, error) {
	budget, err := s.client.GetBudgetDetail(ctx, budgetName)
	if err != nil {
		return nil, err
	}

	accounts, err := s.client.GetAccounts(ctx, budget.ID)
	if err != nil {
		return nil, err
	}

	report := &BalancesReport{Name: accountName}
	for _, account := range accounts {
		if account.Closed || account.Deleted {
			continue
		}
		if !strings.Contains(strings.ToLower(account.Name), strings.ToLower(accountName)) {
			continue
		}
		report.Balances = append(report.Balances, AccountBalance{
			Name:    account.Name,
			Balance: account.Balance.Decimal(),
		})
	}
	if len(report.Balances) == 0 {
		return nil, ynab.NewAccountNotFound(accountName)
	}

	return report, nil
}

// Funded reports the funded amount against the goal target for a category,
// or for each visible category in a category group.
func (s *SummaryService) Funded(ctx context.Context, budgetName, categoryOrGroupName string) (*FundedReport, error) {
	budget, category, group, err := s.findCategoryOrGroup(ctx, budgetName, categoryOrGroupName)
	if err != nil {
		return nil, err
	}

	if category != nil {
		current, err := s.client.GetCategoryByID(ctx, budget.ID, category.ID)
		if err != nil {
			return nil, err
		}
		return &FundedReport{
			Name:       current.Name,
			Categories: []FundedCategory{fundedCategory(*current)},
		}, nil
	}

	report := &FundedReport{Name: group.Name}
	for _, category := range groupCategories(budget, group) {
		report.Categories = append(report.Categories, fundedCategory(category))
	}
	return report, nil
}

// Activity reports the current month's activity and monthly need for a
// category, or summed over a category group.
func (s *SummaryService) Activity(ctx context.Context, budgetName, categoryOrGroupName string) (*ActivityReport, error) {
	budget, category, group, err := s.findCategoryOrGroup(ctx, budgetName, categoryOrGroupName)
	if err != nil {
		return nil, err
	}

	if category != nil {
		current, err := s.client.GetCategoryByID(ctx, budget.ID, category.ID)
		if err != nil {
			return nil, err
		}
		need, err := goal.MonthlyNeed(*current)
		if err != nil {
			return nil, err
		}
		return &ActivityReport{
			Name:     current.Name,
			Activity: current.Activity.Decimal().Abs(),
			Need:     need,
		}, nil
	}

	report := &ActivityReport{Name: group.Name}
	var activity ynab.Milliunits
	for _, category := range groupCategories(budget, group) {
		need, err := goal.MonthlyNeed(category)
		if err != nil {
			return nil, err
		}
		activity += category.Activity
		report.Need = report.Need.Add(need)
	}
	report.Activity = activity.Decimal().Abs()
	return report, nil
}

func (s *SummaryService) findCategoryOrGroup(ctx context.Context, budgetName, name string) (*ynab.BudgetDetail, *ynab.Category, *ynab.CategoryGroup, error) {
	budget, err := s.client.GetBudgetDetail(ctx, budgetName)
	if err != nil {
		return nil, nil, nil, err
	}
	category, group := ynab.FindCategoryOrGroup(budget, name)
	if category == nil && group == nil {
		return nil, nil, nil, ynab.NewCategoryOrGroupNotFound(name)
	}
	return budget, category, group, nil
}

func groupCategories(budget *ynab.BudgetDetail, group *ynab.CategoryGroup) []ynab.Category {
	var categories []ynab.Category
	for _, category := range budget.Categories {
		if category.CategoryGroupID != group.ID || category.Hidden || category.Deleted {
			continue
		}
		categories = append(categories, category)
	}
	return categories
}

func fundedCategory(category ynab.Category) FundedCategory {
	funded := decimal.Zero
	if category.GoalOverallFunded != nil {
		funded = category.GoalOverallFunded.Decimal()
	}
	target := decimal.Zero
	if category.GoalTarget != nil {
		target = category.GoalTarget.Decimal()
	}
	return FundedCategory{Name: category.Name, Funded: funded, Target: target}
}
