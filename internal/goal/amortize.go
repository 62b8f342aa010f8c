// Package goal converts category goal definitions into monthly cost figures
// and display labels.
package goal

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

// Cadence codes used by the budgeting service. The goal repeats every
// cadence * frequency for the base codes; for CadenceEveryTwoMonths through
// CadenceEveryElevenMonths the frequency is ignored and the goal repeats
// every (code - 1) months.
const (
	CadenceOnce              = 0
	CadenceMonthly           = 1
	CadenceWeekly            = 2
	CadenceEveryTwoMonths    = 3
	CadenceEveryElevenMonths = 12
	CadenceYearly            = 13
	CadenceEveryTwoYears     = 14
)

// ErrUnknownCadence reports a goal cadence code outside the documented 0-14
// range. The budgeting service has never been observed to produce one, so it
// fails the build rather than silently pricing the goal at zero.
var ErrUnknownCadence = errors.New("goal: unknown cadence code")

var (
	four       = decimal.NewFromInt(4)
	twelve     = decimal.NewFromInt(12)
	twentyFour = decimal.NewFromInt(24)
)

// MonthlyNeed figures out the monthly cost of a category's goal (shown as
// "Needed This Month" in the budgeting service). Recurring goals resolve a
// periods-per-month multiplier from the cadence and apply it to the target
// amount. Non-recurring goals divide the remaining amount by the months left
// to fund it. Unset or non-positive inputs resolve to zero.
func MonthlyNeed(category ynab.Category) (decimal.Decimal, error) {
	multiplier, err := periodsPerMonth(category.GoalCadence, category.GoalCadenceFrequency)
	if err != nil {
		return decimal.Zero, err
	}

	if multiplier != nil {
		if category.GoalTarget == nil || *category.GoalTarget <= 0 {
			return decimal.Zero, nil
		}
		return category.GoalTarget.Decimal().Mul(*multiplier), nil
	}

	if category.GoalOverallLeft == nil || *category.GoalOverallLeft <= 0 {
		return decimal.Zero, nil
	}
	if category.GoalMonthsToBudget == nil || *category.GoalMonthsToBudget <= 0 {
		return decimal.Zero, nil
	}
	return category.GoalOverallLeft.Decimal().Div(decimal.NewFromInt(int64(*category.GoalMonthsToBudget))), nil
}

// periodsPerMonth resolves the cadence to a monthly multiplier. A nil result
// with a nil error means the goal is non-recurring (no cadence, a one-time
// cadence, or a frequency-based cadence with no usable frequency).
func periodsPerMonth(cadence, frequency *int) (*decimal.Decimal, error) {
	if cadence == nil {
		return nil, nil
	}

	switch code := *cadence; {
	case code == CadenceOnce:
		return nil, nil
	case code == CadenceMonthly:
		if frequency == nil || *frequency <= 0 {
			return nil, nil
		}
		m := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(*frequency)))
		return &m, nil
	case code == CadenceWeekly:
		if frequency == nil || *frequency <= 0 {
			return nil, nil
		}
		m := four.Mul(decimal.NewFromInt(int64(*frequency)))
		return &m, nil
	case code >= CadenceEveryTwoMonths && code <= CadenceEveryElevenMonths:
		m := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(code - 1)))
		return &m, nil
	case code == CadenceYearly:
		if frequency == nil || *frequency <= 0 {
			return nil, nil
		}
		m := decimal.NewFromInt(1).Div(twelve.Mul(decimal.NewFromInt(int64(*frequency))))
		return &m, nil
	case code == CadenceEveryTwoYears:
		m := decimal.NewFromInt(1).Div(twentyFour)
		return &m, nil
	default:
		return nil, ErrUnknownCadence
	}
}
