package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func series(prices ...float64) []PricePoint {
	pts := make([]PricePoint, 0, len(prices))
	for i, p := range prices {
		pts = append(pts, PricePoint{
			UnixMilli: int64(i) * 86400000,
			Price:     decimal.NewFromFloat(p),
		})
	}
	return pts
}

func TestPredictTrend_Thresholds(t *testing.T) {
	cases := []struct {
		name   string
		prices []float64
		want   TrendLabel
	}{
		{"bullish above +5pct", []float64{100, 101, 106}, TrendBullish},
		{"bearish below -5pct", []float64{100, 99, 94}, TrendBearish},
		{"stable within band", []float64{100, 103, 102}, TrendStable},
		{"exactly +5pct is stable", []float64{100, 105}, TrendStable},
		{"exactly -5pct is stable", []float64{100, 95}, TrendStable},
		{"only endpoints matter", []float64{100, 500, 1, 102}, TrendStable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PredictTrend(series(tc.prices...))
			if got != tc.want {
				t.Errorf("PredictTrend(%v) = %s, want %s", tc.prices, got, tc.want)
			}
		})
	}
}

func TestPredictTrend_InsufficientData(t *testing.T) {
	if got := PredictTrend(nil); got != TrendInsufficientData {
		t.Errorf("empty series: got %s", got)
	}
	if got := PredictTrend(series(100)); got != TrendInsufficientData {
		t.Errorf("single point: got %s", got)
	}
	// A zero first price must not divide; it degrades to insufficient data.
	if got := PredictTrend(series(0, 50)); got != TrendInsufficientData {
		t.Errorf("zero first price: got %s", got)
	}
}

func TestTrendLabel_Message(t *testing.T) {
	if msg := TrendUnavailable.Message(); msg != "No prediction available." {
		t.Errorf("unexpected unavailable message: %q", msg)
	}
	if msg := TrendLabel("garbage").Message(); msg != "No prediction available." {
		t.Errorf("unknown labels should fall back to unavailable, got %q", msg)
	}
}
