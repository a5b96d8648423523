package fetcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"GoldPulse/pkg/cache"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"
)

type fakeRates struct {
	mu     sync.Mutex
	calls  map[string]int
	series map[string]timeseries.Series
	fail   map[string]bool
}

func (f *fakeRates) Series(_ context.Context, id string, _, _ time.Time) (timeseries.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[id]++
	if f.fail[id] {
		return nil, errors.New("fred down")
	}
	return f.series[id], nil
}

type fakeQuotes struct {
	mu     sync.Mutex
	calls  map[string]int
	series map[string]timeseries.Series
	fail   map[string]bool
}

func (f *fakeQuotes) History(_ context.Context, ticker, _, _ string) (timeseries.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[ticker]++
	if f.fail[ticker] {
		return nil, errors.New("yahoo down")
	}
	return f.series[ticker], nil
}

type fakeMetrics struct {
	mu      sync.Mutex
	fetches int
	errors  int
}

func (m *fakeMetrics) RecordFetch(_, _ string) {
	m.mu.Lock()
	m.fetches++
	m.mu.Unlock()
}

func (m *fakeMetrics) RecordFetchError(_, _ string) {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

func (m *fakeMetrics) RecordIndicator(string, float64) {}
func (m *fakeMetrics) RecordAnalysisDuration(float64)  {}
func (m *fakeMetrics) RecordRecommendation(string)     {}

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

// monthly builds n observations spaced 30 days apart, starting at day 0.
// Fewer than a year of them keeps inflation on the short-window path, which
// only needs a 30 day lag to produce values.
func monthly(n int, v float64) timeseries.Series {
	pts := make([]timeseries.Point, n)
	for i := range pts {
		pts[i] = timeseries.Point{Date: day(i * 30), Value: v}
	}
	return timeseries.Normalize(pts)
}

func testConfig() Config {
	return Config{
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
	}
}

func newTestFetcher(t *testing.T, rates *fakeRates, quotes *fakeQuotes) (*Fetcher, *fakeMetrics) {
	t.Helper()
	metrics := &fakeMetrics{}
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })
	return New(rates, quotes, mem, metrics, testLogger(t), testConfig()), metrics
}

func TestIndicatorSetAssemblesDerivedSeries(t *testing.T) {
	rates := &fakeRates{series: map[string]timeseries.Series{
		"DGS10":    flat(40, 4.5),
		"CPIAUCSL": monthly(8, 300),
		"DTWEXBGS": flat(40, 104),
	}}
	quotes := &fakeQuotes{series: map[string]timeseries.Series{
		"^VIX":     flat(40, 15),
		"^GSPC":    flat(40, 5000),
		"^NSEI":    flat(40, 22000),
		"GC=F":     flat(40, 2000),
		"SI=F":     flat(40, 25),
		"USDINR=X": flat(40, 83),
	}}

	f, _ := newTestFetcher(t, rates, quotes)
	set := f.IndicatorSet(context.Background())

	if set.Gold.IsEmpty() || set.VIX.IsEmpty() || set.DXY.IsEmpty() {
		t.Fatalf("expected raw series populated")
	}
	if set.RealYield.IsEmpty() {
		t.Fatalf("expected real yield derived")
	}
	if v, ok := set.GoldSilverRatio.LastValue(); !ok || v != 80 {
		t.Fatalf("unexpected gold-silver ratio %v ok=%v", v, ok)
	}
	if set.IndianGold.IsEmpty() {
		t.Fatalf("expected indian gold derived")
	}
}

func TestIndicatorSetUsesCacheOnSecondRun(t *testing.T) {
	rates := &fakeRates{series: map[string]timeseries.Series{
		"DGS10":    flat(5, 4.5),
		"CPIAUCSL": flat(5, 300),
		"DTWEXBGS": flat(5, 104),
	}}
	quotes := &fakeQuotes{series: map[string]timeseries.Series{
		"^VIX":     flat(5, 15),
		"^GSPC":    flat(5, 5000),
		"^NSEI":    flat(5, 22000),
		"GC=F":     flat(5, 2000),
		"SI=F":     flat(5, 25),
		"USDINR=X": flat(5, 83),
	}}

	f, _ := newTestFetcher(t, rates, quotes)
	f.IndicatorSet(context.Background())
	f.IndicatorSet(context.Background())

	quotes.mu.Lock()
	defer quotes.mu.Unlock()
	if quotes.calls["GC=F"] != 1 {
		t.Fatalf("expected cached gold series, got %d fetches", quotes.calls["GC=F"])
	}
}

func TestIndicatorSetDegradesOnSourceFailure(t *testing.T) {
	rates := &fakeRates{
		series: map[string]timeseries.Series{"CPIAUCSL": flat(5, 300), "DTWEXBGS": flat(5, 104)},
		fail:   map[string]bool{"DGS10": true},
	}
	quotes := &fakeQuotes{
		series: map[string]timeseries.Series{
			"^GSPC": flat(5, 5000), "^NSEI": flat(5, 22000),
			"GC=F": flat(5, 2000), "SI=F": flat(5, 25), "USDINR=X": flat(5, 83),
		},
		fail: map[string]bool{"^VIX": true},
	}

	f, metrics := newTestFetcher(t, rates, quotes)
	set := f.IndicatorSet(context.Background())

	if !set.VIX.IsEmpty() {
		t.Fatalf("expected empty VIX series on failure")
	}
	if !set.RealYield.IsEmpty() {
		t.Fatalf("expected empty real yield without treasury data")
	}
	if set.Gold.IsEmpty() {
		t.Fatalf("expected healthy sources unaffected")
	}
	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	if metrics.errors != 2 {
		t.Fatalf("expected 2 fetch errors recorded, got %d", metrics.errors)
	}
}

func TestRefreshInvalidatesCache(t *testing.T) {
	rates := &fakeRates{series: map[string]timeseries.Series{
		"DGS10":    flat(5, 4.5),
		"CPIAUCSL": flat(5, 300),
		"DTWEXBGS": flat(5, 104),
	}}
	quotes := &fakeQuotes{series: map[string]timeseries.Series{
		"^VIX":     flat(5, 15),
		"^GSPC":    flat(5, 5000),
		"^NSEI":    flat(5, 22000),
		"GC=F":     flat(5, 2000),
		"SI=F":     flat(5, 25),
		"USDINR=X": flat(5, 83),
	}}

	f, _ := newTestFetcher(t, rates, quotes)
	f.IndicatorSet(context.Background())
	f.Refresh(context.Background())

	quotes.mu.Lock()
	defer quotes.mu.Unlock()
	if quotes.calls["GC=F"] != 2 {
		t.Fatalf("expected refetch after refresh, got %d fetches", quotes.calls["GC=F"])
	}
}
