package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal     *prometheus.CounterVec
	fetchErrorsTotal *prometheus.CounterVec
	indicatorValue   *prometheus.GaugeVec
	analysisDuration prometheus.Histogram
	recommendations  *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_fetches_total",
				Help: "Total number of upstream series fetches",
			},
			[]string{"source", "series"},
		),
		fetchErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_fetch_errors_total",
				Help: "Total number of failed upstream fetches",
			},
			[]string{"source", "series"},
		),
		indicatorValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "goldpulse_indicator_value",
				Help: "Latest computed value of a market indicator",
			},
			[]string{"indicator"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "goldpulse_analysis_duration_seconds",
				Help:    "Duration of a full market analysis in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		recommendations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_recommendations_total",
				Help: "Total number of issued entry recommendations",
			},
			[]string{"recommendation"},
		),
	}
}

// RecordFetch records a successful upstream fetch.
func (r *Recorder) RecordFetch(source, series string) {
	r.fetchesTotal.WithLabelValues(source, series).Inc()
}

// RecordFetchError records a failed upstream fetch.
func (r *Recorder) RecordFetchError(source, series string) {
	r.fetchErrorsTotal.WithLabelValues(source, series).Inc()
}

// RecordIndicator records the latest value of a computed indicator.
func (r *Recorder) RecordIndicator(name string, value float64) {
	r.indicatorValue.WithLabelValues(name).Set(value)
}

// RecordAnalysisDuration records how long a full analysis took.
func (r *Recorder) RecordAnalysisDuration(seconds float64) {
	r.analysisDuration.Observe(seconds)
}

// RecordRecommendation counts an issued recommendation.
func (r *Recorder) RecordRecommendation(rec string) {
	r.recommendations.WithLabelValues(rec).Inc()
}
