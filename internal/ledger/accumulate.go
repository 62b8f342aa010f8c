package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Delta is a dated, signed amount to accumulate.
type Delta struct {
	Date   time.Time
	Amount decimal.Decimal
}

// BalancePoint is one step of a running-balance series: the adjusted delta
// applied on a date and the cumulative balance after applying it.
type BalancePoint struct {
	Date           time.Time
	Amount         decimal.Decimal
	RunningBalance decimal.Decimal
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Accumulate walks deltas in date order and produces the running-balance
// series. When an interest schedule is present, a monthly interest charge of
// |balance| * rate/100 / 12 is deducted from each delta; when an escrow
// schedule is present, the applicable escrow amount is deducted. Neither
// adjustment applies while the balance is still zero.
func Accumulate(deltas []Delta, interest, escrow []PeriodicValue) ([]BalancePoint, error) {
	sorted := make([]Delta, len(deltas))
	copy(sorted, deltas)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	points := make([]BalancePoint, 0, len(sorted))
	cumulative := decimal.Zero

	for _, delta := range sorted {
		amount := delta.Amount

		if len(interest) > 0 && !cumulative.IsZero() {
			rate, err := LookupPeriodicValue(interest, delta.Date)
			if err != nil {
				return nil, err
			}
			charge := cumulative.Abs().Mul(rate.Div(hundred)).Div(twelve)
			amount = amount.Sub(charge)
		}

		if len(escrow) > 0 && !cumulative.IsZero() {
			escrowAmount, err := LookupPeriodicValue(escrow, delta.Date)
			if err != nil {
				return nil, err
			}
			amount = amount.Sub(escrowAmount)
		}

		cumulative = cumulative.Add(amount)
		points = append(points, BalancePoint{
			Date:           delta.Date,
			Amount:         amount,
			RunningBalance: cumulative,
		})
	}

	return points, nil
}

// AccumulateMerged merges already-adjusted points from several accounts and
// recomputes a single running balance over the merged, date-ordered deltas.
// A group balance is not the sum of per-account running balances: interleaved
// posting dates make ordering matter, so the cumulative sum is rebuilt.
func AccumulateMerged(series ...[]BalancePoint) []BalancePoint {
	var merged []Delta
	for _, points := range series {
		for _, point := range points {
			merged = append(merged, Delta{Date: point.Date, Amount: point.Amount})
		}
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Date.Before(merged[j].Date) })

	points := make([]BalancePoint, 0, len(merged))
	cumulative := decimal.Zero
	for _, delta := range merged {
		cumulative = cumulative.Add(delta.Amount)
		points = append(points, BalancePoint{
			Date:           delta.Date,
			Amount:         delta.Amount,
			RunningBalance: cumulative,
		})
	}

	return points
}

// TrimBefore drops points older than the cutoff. Trimming happens only after
// running balances are fully computed so cumulative totals stay intact.
func TrimBefore(points []BalancePoint, cutoff time.Time) []BalancePoint {
	trimmed := make([]BalancePoint, 0, len(points))
	for _, point := range points {
		if point.Date.Before(cutoff) {
			continue
		}
		trimmed = append(trimmed, point)
	}
	return trimmed
}
