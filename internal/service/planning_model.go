package service

import "github.com/shopspring/decimal"

// PlanningReport is the monthly goal-planning report model.
type PlanningReport struct {
	BudgetName   string
	Groups       []PlanningGroup
	MonthlyTotal decimal.Decimal
	YearlyTotal  decimal.Decimal
}

// PlanningGroup is one category group in the planning report with its
// monthly and yearly cost totals.
type PlanningGroup struct {
	CategoryGroupName string
	Categories        []PlanningCategory
	MonthlyTotal      decimal.Decimal
	YearlyTotal       decimal.Decimal
}

// PlanningCategory is one goal-bearing category in the planning report.
// PercentageComplete is only set for one-time goals.
type PlanningCategory struct {
	CategoryName       string
	CadenceLabel       string
	DueLabel           string
	GoalTarget         decimal.Decimal
	PercentageComplete *decimal.Decimal
	MonthlyCost        decimal.Decimal
	YearlyCost         decimal.Decimal
}
