package fred

import (
	"context"
	"fmt"
	"strconv"
	"time"

	drepo "GoldPulse/internal/domain/repository"
	xhttp "GoldPulse/pkg/http"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"
	"GoldPulse/pkg/util"
)

// Client implements a RateSource backed by the FRED observations API.
type Client struct {
	apiKey  string
	baseURL string
	http    *xhttp.Client
	logger  *applogger.Logger
}

// New creates a new FRED RateSource. An empty API key is allowed; fetches
// then return empty series so dependent indicators degrade to NEUTRAL
// instead of failing the whole analysis.
func New(apiKey, baseURL string, timeout time.Duration, l *applogger.Logger) drepo.RateSource {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:  l,
	}
}

type observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type observationsResponse struct {
	Observations []observation `json:"observations"`
}

// Series fetches dated observations for a FRED series. Observations with the
// "." placeholder value are dropped.
func (c *Client) Series(ctx context.Context, seriesID string, start, end time.Time) (timeseries.Series, error) {
	if c.apiKey == "" {
		c.logger.Warn("fred api key not set, returning empty series",
			applogger.String("series", seriesID))
		return timeseries.Series{}, nil
	}

	var parsed observationsResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/series/observations", c.baseURL),
		QueryParams: map[string][]string{
			"series_id":         {seriesID},
			"api_key":           {c.apiKey},
			"file_type":         {"json"},
			"observation_start": {util.FormatDate(start)},
			"observation_end":   {util.FormatDate(end)},
		},
	}, &parsed)
	if err != nil {
		return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
	}

	points := make([]timeseries.Point, 0, len(parsed.Observations))
	for _, obs := range parsed.Observations {
		if obs.Value == "." {
			continue
		}
		date, ok := util.ParseDate(obs.Date)
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		points = append(points, timeseries.Point{Date: date, Value: value})
	}

	series := timeseries.Normalize(points)

	c.logger.Debug("fred series fetched",
		applogger.String("series", seriesID),
		applogger.Int("points", series.Len()))

	return series, nil
}
