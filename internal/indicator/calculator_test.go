package indicator

import (
	"math"
	"testing"
	"time"

	"GoldPulse/pkg/timeseries"
)

func day(offset int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func series(offsets []int, values []float64) timeseries.Series {
	pts := make([]timeseries.Point, len(offsets))
	for i := range offsets {
		pts[i] = timeseries.Point{Date: day(offsets[i]), Value: values[i]}
	}
	return timeseries.Normalize(pts)
}

func TestRealYieldShortHistoryFallback(t *testing.T) {
	// Two CPI points 30 days apart: +0.25% over 30 days, annualized to 3%.
	cpi := series([]int{0, 30}, []float64{100, 100.25})
	treasury := series([]int{30}, []float64{5.0})

	ry := RealYield(treasury, cpi)
	if ry.IsEmpty() {
		t.Fatalf("expected real yield series")
	}
	got, _ := ry.LastValue()
	if math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("expected real yield 2.0, got %v", got)
	}
}

func TestRealYieldYoY(t *testing.T) {
	// 13 monthly CPI observations spanning over a year triggers the YoY path.
	offsets := make([]int, 13)
	values := make([]float64, 13)
	for i := range offsets {
		offsets[i] = i * 30
		values[i] = 100
	}
	offsets[12] = 390
	values[12] = 102 // +2% against the level 365 days earlier
	cpi := series(offsets, values)
	treasury := series([]int{390}, []float64{5.0})

	ry := RealYield(treasury, cpi)
	if ry.IsEmpty() {
		t.Fatalf("expected real yield series")
	}
	got, _ := ry.LastValue()
	if math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("expected real yield 3.0, got %v", got)
	}
}

func TestRealYieldEmptyInputs(t *testing.T) {
	if !RealYield(nil, series([]int{0}, []float64{100})).IsEmpty() {
		t.Fatalf("expected empty result for empty treasury")
	}
	if !RealYield(series([]int{0}, []float64{3}), nil).IsEmpty() {
		t.Fatalf("expected empty result for empty cpi")
	}
}

func TestRealYieldNoOverlap(t *testing.T) {
	cpi := series([]int{0, 30}, []float64{100, 101})
	treasury := series([]int{500}, []float64{4.0})
	if !RealYield(treasury, cpi).IsEmpty() {
		t.Fatalf("expected empty result when dates never overlap")
	}
}

func TestGoldSilverRatio(t *testing.T) {
	gold := series([]int{0, 1, 2}, []float64{2000, 2100, 2250})
	silver := series([]int{1, 2, 3}, []float64{25, 25, 30})

	ratio := GoldSilverRatio(gold, silver)
	if ratio.Len() != 2 {
		t.Fatalf("expected 2 ratio rows, got %d", ratio.Len())
	}
	got, _ := ratio.LastValue()
	if math.Abs(got-90) > 1e-9 {
		t.Fatalf("expected ratio 90, got %v", got)
	}
}

func TestGoldSilverRatioSkipsZeroDenominator(t *testing.T) {
	gold := series([]int{0, 1}, []float64{2000, 2000})
	silver := series([]int{0, 1}, []float64{0, 25})
	ratio := GoldSilverRatio(gold, silver)
	if ratio.Len() != 1 {
		t.Fatalf("expected zero-denominator row dropped, got %d rows", ratio.Len())
	}
}

func TestIndianGoldPrice(t *testing.T) {
	gold := series([]int{0}, []float64{2000})
	usdinr := series([]int{0}, []float64{83})

	ig := IndianGoldPrice(gold, usdinr)
	if ig.IsEmpty() {
		t.Fatalf("expected indian gold series")
	}

	usd10g, _ := ig.USD10g.LastValue()
	if math.Abs(usd10g-643.10) > 0.5 {
		t.Fatalf("expected ~643.10 USD/10g, got %v", usd10g)
	}

	inr10g, _ := ig.INR10g.LastValue()
	if math.Abs(inr10g-60308.33) > 0.5 {
		t.Fatalf("expected ~60308 INR/10g, got %v", inr10g)
	}

	rate, _ := ig.USDINR.LastValue()
	if rate != 83 {
		t.Fatalf("expected usdinr 83, got %v", rate)
	}
}

func TestIndianGoldPriceEmpty(t *testing.T) {
	if !IndianGoldPrice(nil, nil).IsEmpty() {
		t.Fatalf("expected empty indian gold for empty inputs")
	}
}
