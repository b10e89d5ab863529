package domain

import (
	"github.com/shopspring/decimal"
)

// TrendLabel is a qualitative short-term trend signal derived from a price
// series.
type TrendLabel string

const (
	TrendBullish          TrendLabel = "bullish"
	TrendBearish          TrendLabel = "bearish"
	TrendStable           TrendLabel = "stable"
	TrendInsufficientData TrendLabel = "insufficient_data"
	// TrendUnavailable marks entries whose history could not be fetched.
	TrendUnavailable TrendLabel = "unavailable"
)

// Message renders the label as the bot's human-readable prediction line.
func (t TrendLabel) Message() string {
	switch t {
	case TrendBullish:
		return "It looks like the coin might pump soon based on recent trends and analysis."
	case TrendBearish:
		return "It seems the coin might dump soon based on recent trends."
	case TrendStable:
		return "The coin seems stable, with no significant trend detected."
	case TrendInsufficientData:
		return "Not enough data to make a prediction."
	default:
		return "No prediction available."
	}
}

// PricePoint is one sample of a time-ordered price series.
type PricePoint struct {
	UnixMilli int64
	Price     decimal.Decimal
}

// pump/dump threshold: +-5% change over the series window.
var trendThresholdPct = decimal.NewFromInt(5)

// PredictTrend classifies the percentage change from the first to the last
// point of the series. Fewer than two points, or a zero first price (which
// would make the change undefined), yield TrendInsufficientData.
func PredictTrend(series []PricePoint) TrendLabel {
	if len(series) < 2 {
		return TrendInsufficientData
	}

	first := series[0].Price
	last := series[len(series)-1].Price
	if first.IsZero() {
		return TrendInsufficientData
	}

	pct := last.Sub(first).Div(first).Mul(decimal.NewFromInt(100))

	switch {
	case pct.GreaterThan(trendThresholdPct):
		return TrendBullish
	case pct.LessThan(trendThresholdPct.Neg()):
		return TrendBearish
	default:
		return TrendStable
	}
}
