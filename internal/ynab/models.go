package ynab

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Milliunits is the integer currency representation used by the budgeting
// service: one thousandth of a major currency unit.
type Milliunits int64

var thousand = decimal.NewFromInt(1000)

// Decimal converts the milliunit amount to major currency units.
func (m Milliunits) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(thousand)
}

// Date is a calendar date with no time component, encoded as "2006-01-02".
type Date struct {
	time.Time
}

// UnmarshalJSON parses a JSON date string into a Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// MarshalJSON encodes the Date as a JSON date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// BudgetSummary identifies a budget.
type BudgetSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BudgetDetail is a budget with its categories and category groups.
type BudgetDetail struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Categories     []Category      `json:"categories"`
	CategoryGroups []CategoryGroup `json:"category_groups"`
}

// CategoryGroup is a named bucket of categories.
type CategoryGroup struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Hidden  bool      `json:"hidden"`
	Deleted bool      `json:"deleted"`
}

// Category is a budget category with its goal fields.
//
// GoalCadence encodes the goal's repeat pattern: 0 = one-time, 1 = monthly,
// 2 = weekly, 3..12 = every (cadence-1) months, 13 = yearly, 14 = every
// 2 years. GoalDay is a day of the week (0 = Sunday) when the cadence is
// weekly, otherwise a day of the month (nil = last day of month).
type Category struct {
	ID                    uuid.UUID   `json:"id"`
	CategoryGroupID       uuid.UUID   `json:"category_group_id"`
	Name                  string      `json:"name"`
	Hidden                bool        `json:"hidden"`
	Deleted               bool        `json:"deleted"`
	Activity              Milliunits  `json:"activity"`
	GoalCadence           *int        `json:"goal_cadence"`
	GoalCadenceFrequency  *int        `json:"goal_cadence_frequency"`
	GoalTarget            *Milliunits `json:"goal_target"`
	GoalOverallLeft       *Milliunits `json:"goal_overall_left"`
	GoalOverallFunded     *Milliunits `json:"goal_overall_funded"`
	GoalMonthsToBudget    *int        `json:"goal_months_to_budget"`
	GoalPercentageComplete *int       `json:"goal_percentage_complete"`
	GoalDay               *int        `json:"goal_day"`
	GoalTargetMonth       *Date       `json:"goal_target_month"`
}

// PeriodicValues is a sparse, date-keyed table of milliunit values that take
// effect from their date forward until superseded. Keys are "2006-01-02".
type PeriodicValues map[string]Milliunits

// Account is a budget account. Debt accounts carry non-empty interest-rate
// and escrow schedules.
type Account struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	Closed            bool           `json:"closed"`
	Deleted           bool           `json:"deleted"`
	Balance           Milliunits     `json:"balance"`
	DebtInterestRates PeriodicValues `json:"debt_interest_rates"`
	DebtEscrowAmounts PeriodicValues `json:"debt_escrow_amounts"`
}

// SubTransaction is a split line within a transaction.
type SubTransaction struct {
	ID         uuid.UUID  `json:"id"`
	Amount     Milliunits `json:"amount"`
	Memo       *string    `json:"memo"`
	CategoryID *uuid.UUID `json:"category_id"`
}

// TransactionDetail is a dated, signed transaction against an account.
type TransactionDetail struct {
	ID              uuid.UUID        `json:"id"`
	Date            Date             `json:"date"`
	Amount          Milliunits       `json:"amount"`
	Memo            *string          `json:"memo"`
	PayeeName       *string          `json:"payee_name"`
	CategoryID      *uuid.UUID       `json:"category_id"`
	AccountID       uuid.UUID        `json:"account_id"`
	AccountName     string           `json:"account_name"`
	Subtransactions []SubTransaction `json:"subtransactions"`
}
