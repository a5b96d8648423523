package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GoldPulse/internal/analyzer"
	"GoldPulse/internal/fetcher"
	"GoldPulse/internal/usecase"
	"GoldPulse/pkg/cache"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"

	"github.com/labstack/echo/v4"
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

func flat(n int, v float64) timeseries.Series {
	pts := make([]timeseries.Point, n)
	for i := range pts {
		pts[i] = timeseries.Point{
			Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Value: v,
		}
	}
	return timeseries.Normalize(pts)
}

func newTestServer(t *testing.T, quotes map[string]timeseries.Series) *echo.Echo {
	t.Helper()

	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })

	f := fetcher.New(
		&stubRates{series: map[string]timeseries.Series{}},
		&stubQuotes{series: quotes},
		mem, noopMetrics{}, l,
		fetcher.Config{
			Treasury10Y: "DGS10", CPI: "CPIAUCSL", DollarIndex: "DTWEXBGS",
			VIX: "^VIX", SP500: "^GSPC", Nifty: "^NSEI",
			Gold: "GC=F", Silver: "SI=F", USDINR: "USDINR=X",
			Range: "1y", Interval: "1d", TTL: time.Minute,
		})
	uc := usecase.NewAnalysisUseCase(f, analyzer.New(analyzer.DefaultThresholds()), noopMetrics{}, l)

	e := echo.New()
	NewAnalysisHandler(l, uc).RegisterRoutes(e)
	return e
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, e *echo.Echo, target string) envelope {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http code %d: %s", rec.Code, rec.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func marketQuotes() map[string]timeseries.Series {
	return map[string]timeseries.Series{
		"^VIX":     flat(40, 15),
		"^GSPC":    flat(40, 5000),
		"^NSEI":    flat(40, 22000),
		"GC=F":     flat(40, 2000),
		"SI=F":     flat(40, 25),
		"USDINR=X": flat(40, 83),
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	env := do(t, e, "/api/health")
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected status %d", env.Status)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("unexpected health status %q", body.Status)
	}
}

func TestGoldPriceEndpoint(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	env := do(t, e, "/api/gold-price")
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected status %d", env.Status)
	}

	var body struct {
		GoldINR10g float64 `json:"gold_inr_10g"`
		USDINR     float64 `json:"usdinr"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if body.USDINR != 83 {
		t.Fatalf("unexpected usdinr %v", body.USDINR)
	}
	if body.GoldINR10g < 60300 || body.GoldINR10g > 60320 {
		t.Fatalf("unexpected inr price %v", body.GoldINR10g)
	}
}

func TestGoldPriceEndpointUpstreamDown(t *testing.T) {
	e := newTestServer(t, map[string]timeseries.Series{})

	env := do(t, e, "/api/gold-price")
	if env.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 envelope, got %d", env.Status)
	}
}

func TestDipDetectionEndpoint(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	env := do(t, e, "/api/dip-detection")
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected status %d", env.Status)
	}

	var body struct {
		Recommendation string                     `json:"recommendation"`
		Checklist      map[string]json.RawMessage `json:"checklist"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(body.Checklist) != 6 {
		t.Fatalf("expected 6 checklist entries, got %d", len(body.Checklist))
	}
	if body.Recommendation == "" {
		t.Fatalf("expected recommendation")
	}
}

func TestFactorAnalysisEndpoint(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	for _, slug := range []string{
		"real-yield", "dxy", "risk-sentiment", "inr", "gold-silver-ratio", "divergence",
	} {
		env := do(t, e, "/api/analysis/"+slug)
		if env.Status != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", slug, env.Status)
		}

		var body struct {
			Factor string `json:"factor"`
			Result struct {
				Signal string `json:"signal"`
			} `json:"result"`
		}
		if err := json.Unmarshal(env.Data, &body); err != nil {
			t.Fatalf("%s: decode data: %v", slug, err)
		}
		if body.Factor == "" || body.Result.Signal == "" {
			t.Fatalf("%s: incomplete factor payload %s", slug, env.Data)
		}
	}
}

func TestFactorAnalysisUnknownSlug(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	env := do(t, e, "/api/analysis/astrology")
	if env.Status != http.StatusNotFound {
		t.Fatalf("expected 404 envelope, got %d", env.Status)
	}
}

func TestHistoricalEndpointValidatesDays(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	env := do(t, e, "/api/historical/gold-price?days=500")
	if env.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 envelope for days out of range, got %d", env.Status)
	}

	env = do(t, e, "/api/historical/gold-price?days=7")
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected status %d", env.Status)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if body.Count != 7 {
		t.Fatalf("expected 7 points, got %d", body.Count)
	}
}

func TestHistoricalEndpointDefaultsDays(t *testing.T) {
	e := newTestServer(t, marketQuotes())

	env := do(t, e, "/api/historical/gold-price")
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected status %d", env.Status)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if body.Count != 30 {
		t.Fatalf("expected default 30 points, got %d", body.Count)
	}
}
