// Package timeseries converts irregular running-balance series into regularly
// spaced points suitable for charting, and derives chart axis bounds.
package timeseries

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reports/internal/ledger"
)

// Point is a resampled balance at a week or month boundary.
type Point struct {
	Date    time.Time
	Balance decimal.Decimal
}

// AverageWeekly buckets a running-balance series by week and averages each
// bucket. The last raw point is the live balance rather than a historical
// sample, so it is excluded from the averages and re-appended unchanged at
// the end; the series always finishes at the true current balance.
func AverageWeekly(points []ledger.BalancePoint) []Point {
	if len(points) == 0 {
		return nil
	}

	type weekKey struct {
		year int
		week int
	}

	sums := make(map[weekKey]decimal.Decimal)
	counts := make(map[weekKey]int64)
	for _, point := range points[:len(points)-1] {
		key := weekKey{year: point.Date.Year(), week: weekOfYear(point.Date)}
		sums[key] = sums[key].Add(point.RunningBalance)
		counts[key]++
	}

	resampled := make([]Point, 0, len(sums)+1)
	for key, sum := range sums {
		resampled = append(resampled, Point{
			Date:    firstDateOfWeek(key.year, key.week),
			Balance: sum.Div(decimal.NewFromInt(counts[key])),
		})
	}
	sort.Slice(resampled, func(i, j int) bool { return resampled[i].Date.Before(resampled[j].Date) })

	last := points[len(points)-1]
	resampled = append(resampled, Point{Date: last.Date, Balance: last.RunningBalance})

	return resampled
}

// weekOfYear numbers weeks from 1, starting at January 1st and advancing on
// Mondays.
func weekOfYear(date time.Time) int {
	jan1 := time.Date(date.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(jan1.Weekday()) + 6) % 7 // days since the Monday at or before Jan 1
	return (date.YearDay()-1+offset)/7 + 1
}

// firstDateOfWeek maps a (year, week) bucket back to a calendar date,
// anchored on the Sunday at or before January 1st.
func firstDateOfWeek(year, week int) time.Time {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	firstSunday := jan1.AddDate(0, 0, -int(jan1.Weekday()))
	if weekOfYear(firstSunday) <= 1 {
		week--
	}
	return firstSunday.AddDate(0, 0, week*7)
}

// InterpolateMonthly produces one point per calendar month between the first
// and last dates of the series, linearly interpolating the balance by
// elapsed-day fraction between the nearest surrounding points. Months before
// the first point or after the last use the nearest side's value directly.
func InterpolateMonthly(points []ledger.BalancePoint) []Point {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]ledger.BalancePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	endDate := sorted[len(sorted)-1].Date
	current := time.Date(sorted[0].Date.Year(), sorted[0].Date.Month(), 1, 0, 0, 0, 0, time.UTC)

	var interpolated []Point
	for !current.After(endDate) {
		var previous, next *ledger.BalancePoint
		for i := range sorted {
			if !sorted[i].Date.After(current) {
				previous = &sorted[i]
			} else {
				next = &sorted[i]
				break
			}
		}

		var balance decimal.Decimal
		switch {
		case previous != nil && next != nil:
			totalDays := next.Date.Sub(previous.Date).Hours() / 24
			elapsedDays := current.Sub(previous.Date).Hours() / 24
			fraction := decimal.NewFromFloat(elapsedDays / totalDays)
			balance = previous.RunningBalance.Add(next.RunningBalance.Sub(previous.RunningBalance).Mul(fraction))
		case previous != nil:
			balance = previous.RunningBalance
		default:
			balance = next.RunningBalance
		}

		interpolated = append(interpolated, Point{Date: current, Balance: balance})
		current = current.AddDate(0, 1, 0)
	}

	return interpolated
}
