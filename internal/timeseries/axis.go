package timeseries

import "github.com/shopspring/decimal"

// Bounds are chart y-axis limits with a major-gridline step.
type Bounds struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Step decimal.Decimal
}

var (
	headroom = decimal.RequireFromString("1.05")
	ten      = decimal.NewFromInt(10)
)

// ComputeBounds derives axis limits from the minimum and maximum balances of
// a series. An all-positive series is pinned to zero at the bottom with the
// top rounded up past the peak; an all-negative series mirrors that. A
// mixed-sign series gets plain 5% headroom on both ends. The step is a tenth
// of the span.
func ComputeBounds(minBalance, maxBalance decimal.Decimal) Bounds {
	var bounds Bounds

	switch {
	case minBalance.Sign() >= 0 && maxBalance.Sign() >= 0:
		bounds.Min = decimal.Zero
		bounds.Max = roundUp(maxBalance.Mul(headroom))
	case minBalance.Sign() < 0 && maxBalance.Sign() <= 0:
		bounds.Min = roundDown(minBalance.Mul(headroom))
		bounds.Max = decimal.Zero
	default:
		bounds.Min = minBalance.Mul(headroom)
		bounds.Max = maxBalance.Mul(headroom)
	}

	bounds.Step = bounds.Max.Sub(bounds.Min).Div(ten)
	return bounds
}

// granularity picks the rounding bucket by magnitude: the nearest 1,000 under
// 10,000, the nearest 10,000 under 1,000,000, the nearest 100,000 above.
func granularity(value decimal.Decimal) decimal.Decimal {
	abs := value.Abs()
	switch {
	case abs.LessThan(decimal.NewFromInt(10_000)):
		return decimal.NewFromInt(1_000)
	case abs.LessThan(decimal.NewFromInt(1_000_000)):
		return decimal.NewFromInt(10_000)
	default:
		return decimal.NewFromInt(100_000)
	}
}

func roundUp(value decimal.Decimal) decimal.Decimal {
	g := granularity(value)
	return value.Div(g).Ceil().Mul(g)
}

func roundDown(value decimal.Decimal) decimal.Decimal {
	g := granularity(value)
	return value.Div(g).Floor().Mul(g)
}
