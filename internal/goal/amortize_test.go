package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

func intPtr(v int) *int { return &v }

func milliPtr(v ynab.Milliunits) *ynab.Milliunits { return &v }

func recurringCategory(cadence, frequency int, target ynab.Milliunits) ynab.Category {
	return ynab.Category{
		GoalCadence:          intPtr(cadence),
		GoalCadenceFrequency: intPtr(frequency),
		GoalTarget:           milliPtr(target),
	}
}

// -- MonthlyNeed tests --

func TestMonthlyNeed_MonthlyGoal(t *testing.T) {
	// A 1200/year target funded monthly is 100/month.
	need, err := MonthlyNeed(recurringCategory(CadenceMonthly, 1, 1200_000))

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(1200)))
}

func TestMonthlyNeed_EveryOtherMonth(t *testing.T) {
	need, err := MonthlyNeed(recurringCategory(CadenceMonthly, 2, 200_000))

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(100)))
}

func TestMonthlyNeed_WeeklyGoal(t *testing.T) {
	// Weekly goals approximate four periods per month.
	need, err := MonthlyNeed(recurringCategory(CadenceWeekly, 1, 25_000))

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(100)))
}

func TestMonthlyNeed_YearlyGoal(t *testing.T) {
	need, err := MonthlyNeed(recurringCategory(CadenceYearly, 1, 1200_000))

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(100)))
}

func TestMonthlyNeed_EveryTwoMonths(t *testing.T) {
	// Codes 3-12 ignore the frequency entirely.
	need, err := MonthlyNeed(recurringCategory(CadenceEveryTwoMonths, 99, 200_000))

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(100)))
}

func TestMonthlyNeed_EveryTwoYears(t *testing.T) {
	need, err := MonthlyNeed(recurringCategory(CadenceEveryTwoYears, 1, 2400_000))

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(100)))
}

func TestMonthlyNeed_RecurringWithoutTarget(t *testing.T) {
	category := ynab.Category{
		GoalCadence:          intPtr(CadenceMonthly),
		GoalCadenceFrequency: intPtr(1),
	}

	need, err := MonthlyNeed(category)

	assert.NoError(t, err)
	assert.True(t, need.IsZero())
}

func TestMonthlyNeed_RecurringNegativeTarget(t *testing.T) {
	need, err := MonthlyNeed(recurringCategory(CadenceMonthly, 1, -500_000))

	assert.NoError(t, err)
	assert.True(t, need.IsZero())
}

func TestMonthlyNeed_OneTimeGoal(t *testing.T) {
	category := ynab.Category{
		GoalCadence:        intPtr(CadenceOnce),
		GoalOverallLeft:    milliPtr(600_000),
		GoalMonthsToBudget: intPtr(3),
	}

	need, err := MonthlyNeed(category)

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(200)))
}

func TestMonthlyNeed_OneTimeGoalZeroMonths(t *testing.T) {
	category := ynab.Category{
		GoalCadence:        intPtr(CadenceOnce),
		GoalOverallLeft:    milliPtr(600_000),
		GoalMonthsToBudget: intPtr(0),
	}

	need, err := MonthlyNeed(category)

	assert.NoError(t, err)
	assert.True(t, need.IsZero())
}

func TestMonthlyNeed_OneTimeGoalNothingLeft(t *testing.T) {
	category := ynab.Category{
		GoalCadence:        intPtr(CadenceOnce),
		GoalOverallLeft:    milliPtr(-100_000),
		GoalMonthsToBudget: intPtr(6),
	}

	need, err := MonthlyNeed(category)

	assert.NoError(t, err)
	assert.True(t, need.IsZero())
}

func TestMonthlyNeed_NoCadence(t *testing.T) {
	need, err := MonthlyNeed(ynab.Category{})

	assert.NoError(t, err)
	assert.True(t, need.IsZero())
}

func TestMonthlyNeed_MissingFrequencyFallsBackToRemaining(t *testing.T) {
	// A frequency-based cadence with no frequency cannot resolve a
	// multiplier, so the remaining/months path applies.
	category := ynab.Category{
		GoalCadence:        intPtr(CadenceMonthly),
		GoalTarget:         milliPtr(1200_000),
		GoalOverallLeft:    milliPtr(600_000),
		GoalMonthsToBudget: intPtr(2),
	}

	need, err := MonthlyNeed(category)

	assert.NoError(t, err)
	assert.True(t, need.Equal(decimal.NewFromInt(300)))
}

func TestMonthlyNeed_UnknownCadence(t *testing.T) {
	category := ynab.Category{GoalCadence: intPtr(15)}

	_, err := MonthlyNeed(category)

	assert.ErrorIs(t, err, ErrUnknownCadence)
}

// -- CadenceLabel tests --

func TestCadenceLabel(t *testing.T) {
	tests := []struct {
		name      string
		cadence   *int
		frequency *int
		expected  string
	}{
		{"nil cadence", nil, nil, "None"},
		{"once", intPtr(0), nil, "Once"},
		{"monthly", intPtr(1), intPtr(1), "Monthly"},
		{"quarterly", intPtr(1), intPtr(3), "Quarterly"},
		{"every six months", intPtr(1), intPtr(6), "6 Months"},
		{"weekly", intPtr(2), intPtr(1), "Weekly"},
		{"biweekly", intPtr(2), intPtr(2), "2 Weeks"},
		{"every two months", intPtr(3), nil, "2 Months"},
		{"every eleven months", intPtr(12), nil, "11 Months"},
		{"yearly", intPtr(13), intPtr(1), "Yearly"},
		{"every three years", intPtr(13), intPtr(3), "3 Years"},
		{"every two years", intPtr(14), nil, "2 Years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := CadenceLabel(tt.cadence, tt.frequency)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestCadenceLabel_UnknownCadence(t *testing.T) {
	_, err := CadenceLabel(intPtr(42), nil)

	assert.ErrorIs(t, err, ErrUnknownCadence)
}

// -- DueDateLabel tests --

func TestDueDateLabel_TargetMonthWins(t *testing.T) {
	targetMonth := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	label := DueDateLabel(intPtr(CadenceMonthly), intPtr(5), &targetMonth)

	assert.Equal(t, "Mar-15", label)
}

func TestDueDateLabel_WeeklyUsesWeekday(t *testing.T) {
	assert.Equal(t, "Sunday", DueDateLabel(intPtr(CadenceWeekly), intPtr(0), nil))
	assert.Equal(t, "Saturday", DueDateLabel(intPtr(CadenceWeekly), intPtr(6), nil))
}

func TestDueDateLabel_DayOfMonthSuffixes(t *testing.T) {
	assert.Equal(t, "1st", DueDateLabel(intPtr(CadenceMonthly), intPtr(1), nil))
	assert.Equal(t, "2nd", DueDateLabel(intPtr(CadenceMonthly), intPtr(2), nil))
	assert.Equal(t, "3rd", DueDateLabel(intPtr(CadenceMonthly), intPtr(3), nil))
	assert.Equal(t, "11th", DueDateLabel(intPtr(CadenceMonthly), intPtr(11), nil))
	assert.Equal(t, "21st", DueDateLabel(intPtr(CadenceMonthly), intPtr(21), nil))
}

func TestDueDateLabel_LastDayOfMonth(t *testing.T) {
	assert.Equal(t, "Last day of month", DueDateLabel(intPtr(CadenceMonthly), nil, nil))
}

func TestDueDateLabel_NoCadence(t *testing.T) {
	assert.Equal(t, "None", DueDateLabel(nil, intPtr(5), nil))
	assert.Equal(t, "None", DueDateLabel(intPtr(CadenceOnce), intPtr(5), nil))
}
