package models

import "time"

// Requests and responses for the HTTP API. Defined in domain for consistency and reuse.

type HistoricalRequest struct {
	Days int `query:"days" json:"days" default:"30" validate:"gte=1,lte=365"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type GoldPriceResponse struct {
	GoldINR10g float64   `json:"gold_inr_10g"`
	GoldUSD10g float64   `json:"gold_usd_10g"`
	USDINR     float64   `json:"usdinr"`
	Timestamp  time.Time `json:"timestamp"`
}

type MarketIndicatorsResponse struct {
	RealYield       *float64  `json:"real_yield"`
	DXY             *float64  `json:"dxy"`
	VIX             *float64  `json:"vix"`
	GoldSilverRatio *float64  `json:"gold_silver_ratio"`
	Timestamp       time.Time `json:"timestamp"`
}

type DipDetectionResponse struct {
	Recommendation Recommendation          `json:"recommendation"`
	BullishCount   int                     `json:"bullish_count"`
	BearishCount   int                     `json:"bearish_count"`
	NeutralCount   int                     `json:"neutral_count"`
	Checklist      map[string]SignalResult `json:"checklist"`
}

type HistoricalGoldPoint struct {
	Date       string  `json:"date"`
	GoldINR10g float64 `json:"gold_inr_10g"`
	GoldUSD10g float64 `json:"gold_usd_10g"`
	USDINR     float64 `json:"usdinr"`
}

type HistoricalGoldResponse struct {
	Data      []HistoricalGoldPoint `json:"data"`
	Count     int                   `json:"count"`
	Timestamp time.Time             `json:"timestamp"`
}

type FactorAnalysisResponse struct {
	Factor    string       `json:"factor"`
	Result    SignalResult `json:"result"`
	Timestamp time.Time    `json:"timestamp"`
}

type FullAnalysisResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Analysis
}
