package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	drepo "GoldPulse/internal/domain/repository"
	xhttp "GoldPulse/pkg/http"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"

	"github.com/cenkalti/backoff/v4"
)

// Client implements a QuoteSource backed by the Yahoo Finance chart API.
type Client struct {
	baseURL         string
	http            *xhttp.Client
	logger          *applogger.Logger
	retryMaxElapsed time.Duration
}

// New creates a new Yahoo Finance QuoteSource.
func New(baseURL string, timeout, retryMaxElapsed time.Duration, l *applogger.Logger) drepo.QuoteSource {
	return &Client{
		baseURL:         baseURL,
		http:            xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:          l,
		retryMaxElapsed: retryMaxElapsed,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History fetches daily close prices for a ticker. Rows with null closes
// (market holidays, stale quotes) are dropped. Transient failures are
// retried with exponential backoff.
func (c *Client) History(ctx context.Context, ticker, rng, interval string) (timeseries.Series, error) {
	var parsed chartResponse

	operation := func() error {
		parsed = chartResponse{}
		return c.http.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodGet,
			URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(ticker)),
			Headers: map[string]string{
				"User-Agent": "Mozilla/5.0 (compatible; goldpulse/1.0)",
			},
			QueryParams: map[string][]string{
				"range":    {rng},
				"interval": {interval},
			},
		}, &parsed)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.retryMaxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("yahoo history %s: %w", ticker, err)
	}

	if parsed.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo history %s: %s (%s)",
			ticker, parsed.Chart.Error.Description, parsed.Chart.Error.Code)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo history %s: empty result", ticker)
	}

	result := parsed.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	points := make([]timeseries.Point, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, timeseries.Point{
			Date:  time.Unix(ts, 0).UTC(),
			Value: *closes[i],
		})
	}

	series := timeseries.Normalize(points)

	c.logger.Debug("yahoo history fetched",
		applogger.String("ticker", ticker),
		applogger.Int("points", series.Len()))

	return series, nil
}
