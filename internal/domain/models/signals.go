package models

// Signal is the direction a factor implies for gold.
type Signal string

const (
	SignalBullish Signal = "BULLISH"
	SignalBearish Signal = "BEARISH"
	SignalNeutral Signal = "NEUTRAL"
)

// Recommendation is the aggregated dip-entry verdict.
type Recommendation string

const (
	RecommendGoodEntry    Recommendation = "GOOD_ENTRY"
	RecommendNeutralWatch Recommendation = "NEUTRAL_WATCH"
	RecommendAvoid        Recommendation = "AVOID"
)

// Checklist factor names. The dip score always carries exactly these six.
const (
	FactorRealYield       = "Real Yield"
	FactorUSDStrength     = "USD Strength"
	FactorRiskSentiment   = "Risk Sentiment"
	FactorINRMovement     = "INR Movement"
	FactorGoldSilverRatio = "Gold-Silver Ratio"
	FactorYieldDivergence = "Yield Divergence"
)

// SignalResult is one factor's classification. Status embeds the numeric
// evidence so the result reads standalone without recomputation. A factor
// with no underlying data classifies NEUTRAL with a Status explaining the
// gap and a nil Value; it never goes missing from a checklist.
type SignalResult struct {
	Status   string   `json:"status"`
	Signal   Signal   `json:"signal"`
	Value    *float64 `json:"value,omitempty"`
	Change   *float64 `json:"change,omitempty"`
	Critical *bool    `json:"critical,omitempty"`
}

// DipScore aggregates the six checklist signals into a recommendation.
// BullishCount + BearishCount never exceeds len(Checklist); the
// recommendation is a pure function of the two counts.
type DipScore struct {
	Checklist      map[string]SignalResult `json:"checklist"`
	BullishCount   int                     `json:"bullish_count"`
	BearishCount   int                     `json:"bearish_count"`
	Recommendation Recommendation          `json:"recommendation"`
}

// Analysis is one full analysis run: the six factor results plus the score.
type Analysis struct {
	RealYield       SignalResult `json:"real_yield"`
	DXY             SignalResult `json:"dxy"`
	RiskSentiment   SignalResult `json:"risk_sentiment"`
	INR             SignalResult `json:"inr"`
	GoldSilverRatio SignalResult `json:"gold_silver_ratio"`
	Divergence      SignalResult `json:"divergence"`
	DipScore        DipScore     `json:"dip_score"`
}

// Float returns a pointer for an optional numeric result field.
func Float(v float64) *float64 { return &v }

// Flag returns a pointer for an optional boolean result field.
func Flag(v bool) *bool { return &v }
