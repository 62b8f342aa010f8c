package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reports/internal/goal"
	"github.com/carson-networks/budget-reports/internal/ynab"
)

// PlanningService builds the monthly planning report. Monthly and non-monthly
// (quarterly, annually, etc.) recurring goals are supported, as well as
// non-recurring goals.
type PlanningService struct {
	client       BudgetClient
	skipGroupIDs map[uuid.UUID]struct{}
}

// NewPlanningService creates a new PlanningService. Categories in the given
// groups (typically credit-card payments and the service's internal master
// group) are excluded from the report.
func NewPlanningService(client BudgetClient, skipGroupIDs []uuid.UUID) *PlanningService {
	skip := make(map[uuid.UUID]struct{}, len(skipGroupIDs))
	for _, id := range skipGroupIDs {
		skip[id] = struct{}{}
	}
	return &PlanningService{client: client, skipGroupIDs: skip}
}

// categoryWithGroup is a category joined to its group's display name. The
// join happens once at ingestion; nothing downstream mutates the fetched
// records.
type categoryWithGroup struct {
	ynab.Category
	GroupName string
}

// Build assembles the planning report for a budget. Any unknown goal cadence
// fails the whole build; no partial report is returned.
func (s *PlanningService) Build(ctx context.Context, budgetName string) (*PlanningReport, error) {
	budget, err := s.client.GetBudgetDetail(ctx, budgetName)
	if err != nil {
		return nil, err
	}

	groupNames := make(map[uuid.UUID]string, len(budget.CategoryGroups))
	for _, group := range budget.CategoryGroups {
		groupNames[group.ID] = group.Name
	}

	// The group list is derived before the hidden/deleted filter so a group
	// whose categories are all hidden still shows up, with no rows.
	grouped := make(map[string][]categoryWithGroup)
	var sortedGroupNames []string
	for _, category := range budget.Categories {
		if _, skip := s.skipGroupIDs[category.CategoryGroupID]; skip {
			continue
		}
		groupName := groupNames[category.CategoryGroupID]
		if _, ok := grouped[groupName]; !ok {
			grouped[groupName] = nil
			sortedGroupNames = append(sortedGroupNames, groupName)
		}
		if category.Deleted || category.Hidden {
			continue
		}
		grouped[groupName] = append(grouped[groupName], categoryWithGroup{
			Category:  category,
			GroupName: groupName,
		})
	}
	sort.Strings(sortedGroupNames)

	report := &PlanningReport{BudgetName: budget.Name}
	for _, groupName := range sortedGroupNames {
		planningGroup, err := buildPlanningGroup(groupName, grouped[groupName])
		if err != nil {
			return nil, err
		}
		report.Groups = append(report.Groups, planningGroup)
		report.MonthlyTotal = report.MonthlyTotal.Add(planningGroup.MonthlyTotal)
		report.YearlyTotal = report.YearlyTotal.Add(planningGroup.YearlyTotal)
	}

	return report, nil
}

func buildPlanningGroup(groupName string, categories []categoryWithGroup) (PlanningGroup, error) {
	group := PlanningGroup{CategoryGroupName: groupName}

	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	for _, category := range categories {
		planningCategory, err := buildPlanningCategory(category)
		if err != nil {
			return PlanningGroup{}, fmt.Errorf("category %s: %w", category.Name, err)
		}
		group.Categories = append(group.Categories, planningCategory)
		group.MonthlyTotal = group.MonthlyTotal.Add(planningCategory.MonthlyCost)
		group.YearlyTotal = group.YearlyTotal.Add(planningCategory.YearlyCost)
	}

	return group, nil
}

var months = decimal.NewFromInt(12)

func buildPlanningCategory(category categoryWithGroup) (PlanningCategory, error) {
	monthlyCost, err := goal.MonthlyNeed(category.Category)
	if err != nil {
		return PlanningCategory{}, err
	}

	cadenceLabel, err := goal.CadenceLabel(category.GoalCadence, category.GoalCadenceFrequency)
	if err != nil {
		return PlanningCategory{}, err
	}

	var targetMonth *time.Time
	if category.GoalTargetMonth != nil {
		targetMonth = &category.GoalTargetMonth.Time
	}

	target := decimal.Zero
	if category.GoalTarget != nil && *category.GoalTarget > 0 {
		target = category.GoalTarget.Decimal()
	}

	var percentageComplete *decimal.Decimal
	if category.GoalCadence != nil && *category.GoalCadence == goal.CadenceOnce {
		complete := decimal.Zero
		if category.GoalPercentageComplete != nil {
			complete = decimal.NewFromInt(int64(*category.GoalPercentageComplete)).Div(decimal.NewFromInt(100))
		}
		percentageComplete = &complete
	}

	return PlanningCategory{
		CategoryName:       category.Name,
		CadenceLabel:       cadenceLabel,
		DueLabel:           goal.DueDateLabel(category.GoalCadence, category.GoalDay, targetMonth),
		GoalTarget:         target,
		PercentageComplete: percentageComplete,
		MonthlyCost:        monthlyCost,
		YearlyCost:         monthlyCost.Mul(months),
	}, nil
}
