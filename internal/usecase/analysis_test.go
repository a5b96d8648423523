package usecase

import (
	"context"
	"testing"
	"time"

	"GoldPulse/internal/analyzer"
	"GoldPulse/internal/fetcher"
	"GoldPulse/pkg/cache"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"
)

type stubRates struct {
	series map[string]timeseries.Series
}

func (s *stubRates) Series(_ context.Context, id string, _, _ time.Time) (timeseries.Series, error) {
	return s.series[id], nil
}

type stubQuotes struct {
	series map[string]timeseries.Series
}

func (s *stubQuotes) History(_ context.Context, ticker, _, _ string) (timeseries.Series, error) {
	return s.series[ticker], nil
}

type noopMetrics struct{}

func (noopMetrics) RecordFetch(_, _ string)         {}
func (noopMetrics) RecordFetchError(_, _ string)    {}
func (noopMetrics) RecordIndicator(string, float64) {}
func (noopMetrics) RecordAnalysisDuration(float64)  {}
func (noopMetrics) RecordRecommendation(string)     {}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func flat(n int, v float64) timeseries.Series {
	pts := make([]timeseries.Point, n)
	for i := range pts {
		pts[i] = timeseries.Point{Date: day(i), Value: v}
	}
	return timeseries.Normalize(pts)
}

func newUseCase(t *testing.T, rates *stubRates, quotes *stubQuotes) *AnalysisUseCase {
	t.Helper()
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })

	f := fetcher.New(rates, quotes, mem, noopMetrics{}, testLogger(t), fetcher.Config{
		Treasury10Y: "DGS10",
		CPI:         "CPIAUCSL",
		DollarIndex: "DTWEXBGS",
		VIX:         "^VIX",
		SP500:       "^GSPC",
		Nifty:       "^NSEI",
		Gold:        "GC=F",
		Silver:      "SI=F",
		USDINR:      "USDINR=X",
		Range:       "1y",
		Interval:    "1d",
		TTL:         time.Minute,
	})
	return NewAnalysisUseCase(f, analyzer.New(analyzer.DefaultThresholds()), noopMetrics{}, testLogger(t))
}

func marketStubs() (*stubRates, *stubQuotes) {
	rates := &stubRates{series: map[string]timeseries.Series{
		"DGS10":    flat(40, 4.5),
		"CPIAUCSL": flat(40, 300),
		"DTWEXBGS": flat(40, 104),
	}}
	quotes := &stubQuotes{series: map[string]timeseries.Series{
		"^VIX":     flat(40, 15),
		"^GSPC":    flat(40, 5000),
		"^NSEI":    flat(40, 22000),
		"GC=F":     flat(40, 2000),
		"SI=F":     flat(40, 25),
		"USDINR=X": flat(40, 83),
	}}
	return rates, quotes
}

func TestGoldPriceLatestValues(t *testing.T) {
	rates, quotes := marketStubs()
	uc := newUseCase(t, rates, quotes)

	resp, err := uc.GoldPrice(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.USDINR != 83 {
		t.Fatalf("unexpected usdinr %v", resp.USDINR)
	}
	if resp.GoldUSD10g < 642.5 || resp.GoldUSD10g > 643.5 {
		t.Fatalf("unexpected usd price %v", resp.GoldUSD10g)
	}
	if resp.GoldINR10g < 60300 || resp.GoldINR10g > 60320 {
		t.Fatalf("unexpected inr price %v", resp.GoldINR10g)
	}
}

func TestGoldPriceUnavailable(t *testing.T) {
	uc := newUseCase(t,
		&stubRates{series: map[string]timeseries.Series{}},
		&stubQuotes{series: map[string]timeseries.Series{}})

	if _, err := uc.GoldPrice(context.Background()); err == nil {
		t.Fatalf("expected error without upstream data")
	}
}

func TestDipDetectionCountsAddUp(t *testing.T) {
	rates, quotes := marketStubs()
	uc := newUseCase(t, rates, quotes)

	resp, err := uc.DipDetection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Checklist) != 6 {
		t.Fatalf("expected 6 checklist entries, got %d", len(resp.Checklist))
	}
	if resp.BullishCount+resp.BearishCount+resp.NeutralCount != 6 {
		t.Fatalf("counts do not add up: %d/%d/%d",
			resp.BullishCount, resp.BearishCount, resp.NeutralCount)
	}
	if resp.Recommendation == "" {
		t.Fatalf("expected a recommendation")
	}
}

func TestHistoricalGoldClampsDays(t *testing.T) {
	rates, quotes := marketStubs()
	uc := newUseCase(t, rates, quotes)

	resp, err := uc.HistoricalGold(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 7 || len(resp.Data) != 7 {
		t.Fatalf("expected 7 points, got %d", resp.Count)
	}
	if resp.Data[0].Date == "" {
		t.Fatalf("expected formatted dates")
	}

	// More days than history returns everything.
	resp, err = uc.HistoricalGold(context.Background(), 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 40 {
		t.Fatalf("expected all 40 points, got %d", resp.Count)
	}
}

func TestMarketIndicatorsNilWithoutData(t *testing.T) {
	uc := newUseCase(t,
		&stubRates{series: map[string]timeseries.Series{}},
		&stubQuotes{series: map[string]timeseries.Series{"^VIX": flat(5, 15)}})

	resp, err := uc.MarketIndicators(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RealYield != nil {
		t.Fatalf("expected nil real yield")
	}
	if resp.VIX == nil || *resp.VIX != 15 {
		t.Fatalf("unexpected vix %v", resp.VIX)
	}
}
