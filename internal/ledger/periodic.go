package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmptySchedule reports a periodic-value lookup against an empty schedule.
// Callers are expected to check for a schedule before asking for a value, so
// hitting this is a contract violation that fails the whole report build.
var ErrEmptySchedule = errors.New("ledger: no periodic values")

// PeriodicValue is one entry in a sparse, date-keyed schedule. The value
// takes effect from its date forward until superseded by a later entry.
type PeriodicValue struct {
	Date  time.Time
	Value decimal.Decimal
}

// LookupPeriodicValue resolves a date to the most recent schedule value whose
// date is at or before it. Dates before the first entry resolve to zero. The
// schedule need not be pre-sorted.
func LookupPeriodicValue(schedule []PeriodicValue, date time.Time) (decimal.Decimal, error) {
	if len(schedule) == 0 {
		return decimal.Zero, ErrEmptySchedule
	}

	sorted := make([]PeriodicValue, len(schedule))
	copy(sorted, schedule)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	found := decimal.Zero
	for _, entry := range sorted {
		if entry.Date.After(date) {
			break
		}
		found = entry.Value
	}
	return found, nil
}
