package repository

import (
	"context"
	"time"

	"GoldPulse/pkg/timeseries"
)

// RateSource serves dated macro series (treasury yields, CPI, the dollar
// index) from an economic-data provider.
type RateSource interface {
	Series(ctx context.Context, seriesID string, start, end time.Time) (timeseries.Series, error)
}

// QuoteSource serves daily close-price history for market tickers
// (futures, indices, FX pairs).
type QuoteSource interface {
	History(ctx context.Context, ticker, rng, interval string) (timeseries.Series, error)
}

// Metrics records operational counters and gauges.
type Metrics interface {
	RecordFetch(source, series string)
	RecordFetchError(source, series string)
	RecordIndicator(name string, value float64)
	RecordAnalysisDuration(seconds float64)
	RecordRecommendation(rec string)
}
