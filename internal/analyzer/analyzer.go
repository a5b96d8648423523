package analyzer

import (
	"fmt"
	"strings"

	"GoldPulse/internal/domain/models"
	"GoldPulse/pkg/timeseries"
)

// Thresholds holds every numeric cutoff the classifier compares against.
// Immutable once supplied; the analyzer carries no other state, so a run is
// a deterministic function of the indicator set.
type Thresholds struct {
	VIXLow            float64
	VIXHigh           float64
	GoldSilverHigh    float64
	GoldSilverLow     float64
	RealYieldCritical float64
	DXYMovePct        float64
	INRMovePct        float64
	RealYieldMove     float64
	CorrelationCutoff float64
	EquityRallyPct    float64
	Lookback          int
	Majority          int
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		VIXLow:            13,
		VIXHigh:           20,
		GoldSilverHigh:    85,
		GoldSilverLow:     65,
		RealYieldCritical: 2.0,
		DXYMovePct:        2,
		INRMovePct:        1,
		RealYieldMove:     0.5,
		CorrelationCutoff: -0.3,
		EquityRallyPct:    5,
		Lookback:          30,
		Majority:          3,
	}
}

// Analyzer classifies indicator series into gold-directional signals.
// Every method returns a well-formed SignalResult even when the underlying
// data is missing: unavailability degrades to NEUTRAL with an explanatory
// status, never to an error. That contract is what lets the dip score
// unconditionally expect all six checklist entries.
type Analyzer struct {
	th Thresholds
}

func New(th Thresholds) *Analyzer {
	return &Analyzer{th: th}
}

// RealYield classifies the 30-period change in the real interest rate.
// Rising real yields raise the opportunity cost of holding gold. The
// critical flag marks an absolute level above the critical threshold,
// independent of the trend signal.
func (a *Analyzer) RealYield(set *models.IndicatorSet) models.SignalResult {
	s := set.RealYield
	if s.IsEmpty() {
		return models.SignalResult{
			Status:   "Real yield data unavailable - treasury or CPI series missing",
			Signal:   models.SignalNeutral,
			Critical: models.Flag(false),
		}
	}

	current, _ := s.LastValue()
	change, _ := s.ChangeOver(a.th.Lookback)

	var signal models.Signal
	var status string
	switch {
	case change > a.th.RealYieldMove:
		signal = models.SignalBearish
		status = fmt.Sprintf("Real yield rising (%.2f%% increase) - Negative for gold", change)
	case change < -a.th.RealYieldMove:
		signal = models.SignalBullish
		status = fmt.Sprintf("Real yield falling (%.2f%% decrease) - Positive for gold", change)
	default:
		signal = models.SignalNeutral
		status = fmt.Sprintf("Real yield stable (%.2f%% change)", change)
	}

	return models.SignalResult{
		Status:   status,
		Signal:   signal,
		Value:    models.Float(current),
		Change:   models.Float(change),
		Critical: models.Flag(current > a.th.RealYieldCritical),
	}
}

// DXY classifies the 30-period percent change of the dollar index. A
// strengthening dollar pressures dollar-denominated gold.
func (a *Analyzer) DXY(set *models.IndicatorSet) models.SignalResult {
	s := set.DXY
	if s.IsEmpty() {
		return models.SignalResult{
			Status: "Dollar index data unavailable",
			Signal: models.SignalNeutral,
		}
	}

	current, _ := s.LastValue()
	pct, ok := s.PctChangeOver(a.th.Lookback)
	if !ok {
		return models.SignalResult{
			Status: "Dollar index reference value unusable",
			Signal: models.SignalNeutral,
			Value:  models.Float(current),
		}
	}

	var signal models.Signal
	var status string
	switch {
	case pct > a.th.DXYMovePct:
		signal = models.SignalBearish
		status = fmt.Sprintf("DXY strengthening (%.2f%%) - Negative for gold", pct)
	case pct < -a.th.DXYMovePct:
		signal = models.SignalBullish
		status = fmt.Sprintf("DXY weakening (%.2f%%) - Positive for gold", pct)
	default:
		signal = models.SignalNeutral
		status = fmt.Sprintf("DXY stable (%.2f%% change)", pct)
	}

	return models.SignalResult{
		Status: status,
		Signal: signal,
		Value:  models.Float(current),
		Change: models.Float(pct),
	}
}

// RiskSentiment classifies the market risk regime from the VIX level. Equity
// rally observations (S&P 500, NIFTY) are appended as advisory notes only;
// the VIX signal alone feeds the dip score count.
func (a *Analyzer) RiskSentiment(set *models.IndicatorSet) models.SignalResult {
	var notes []string
	signal := models.SignalNeutral
	var vixLevel *float64

	if !set.VIX.IsEmpty() {
		level, _ := set.VIX.LastValue()
		vixLevel = models.Float(level)
		switch {
		case level < a.th.VIXLow:
			signal = models.SignalBearish
			notes = append(notes, fmt.Sprintf("VIX low (%.2f) - Risk-ON, bearish for gold", level))
		case level > a.th.VIXHigh:
			signal = models.SignalBullish
			notes = append(notes, fmt.Sprintf("VIX high (%.2f) - Risk-OFF, bullish for gold", level))
		default:
			notes = append(notes, fmt.Sprintf("VIX neutral (%.2f)", level))
		}
	}

	if note, ok := a.equityRallyNote("S&P", set.SP500); ok {
		notes = append(notes, note)
	}
	if note, ok := a.equityRallyNote("NIFTY", set.Nifty); ok {
		notes = append(notes, note)
	}

	status := "No clear risk sentiment"
	if len(notes) > 0 {
		status = strings.Join(notes, " | ")
	}

	return models.SignalResult{
		Status: status,
		Signal: signal,
		Value:  vixLevel,
	}
}

// equityRallyNote reports a strong equity rally over the lookback window.
// Short series yield no note; the observation requires a full window.
func (a *Analyzer) equityRallyNote(name string, s timeseries.Series) (string, bool) {
	if s.Len() <= a.th.Lookback {
		return "", false
	}
	pct, ok := s.PctChangeOver(a.th.Lookback)
	if !ok || pct <= a.th.EquityRallyPct {
		return "", false
	}
	return fmt.Sprintf("%s rallying (+%.2f%%) - Bearish for gold", name, pct), true
}

// INR classifies the 30-period percent change of USD/INR. A weakening rupee
// (rate up) lifts the local gold price and works against a dip entry; a
// strengthening rupee cheapens Indian gold.
func (a *Analyzer) INR(set *models.IndicatorSet) models.SignalResult {
	s := set.USDINR
	if s.IsEmpty() {
		return models.SignalResult{
			Status: "USD/INR data unavailable",
			Signal: models.SignalNeutral,
		}
	}

	current, _ := s.LastValue()
	pct, ok := s.PctChangeOver(a.th.Lookback)
	if !ok {
		return models.SignalResult{
			Status: "USD/INR reference value unusable",
			Signal: models.SignalNeutral,
			Value:  models.Float(current),
		}
	}

	var signal models.Signal
	var status string
	switch {
	case pct > a.th.INRMovePct:
		signal = models.SignalBearish
		status = fmt.Sprintf("INR weakening (%.2f%%) - Indian gold costlier", pct)
	case pct < -a.th.INRMovePct:
		signal = models.SignalBullish
		status = fmt.Sprintf("INR strengthening (%.2f%%) - Indian gold cheaper", pct)
	default:
		signal = models.SignalNeutral
		status = fmt.Sprintf("INR stable (%.2f%% change)", pct)
	}

	return models.SignalResult{
		Status: status,
		Signal: signal,
		Value:  models.Float(current),
		Change: models.Float(pct),
	}
}

// GoldSilverRatio classifies the absolute level of the gold/silver ratio, a
// relative-valuation heuristic between the two metals.
func (a *Analyzer) GoldSilverRatio(set *models.IndicatorSet) models.SignalResult {
	s := set.GoldSilverRatio
	if s.IsEmpty() {
		return models.SignalResult{
			Status: "Gold-silver ratio data unavailable",
			Signal: models.SignalNeutral,
		}
	}

	ratio, _ := s.LastValue()

	var signal models.Signal
	var status string
	switch {
	case ratio > a.th.GoldSilverHigh:
		signal = models.SignalBearish
		status = fmt.Sprintf("Ratio high (%.2f) - Gold overvalued vs silver", ratio)
	case ratio < a.th.GoldSilverLow:
		signal = models.SignalBullish
		status = fmt.Sprintf("Ratio low (%.2f) - Silver overheated", ratio)
	default:
		signal = models.SignalNeutral
		status = fmt.Sprintf("Ratio normal (%.2f)", ratio)
	}

	return models.SignalResult{
		Status: status,
		Signal: signal,
		Value:  models.Float(ratio),
	}
}

// YieldDivergence classifies the 30-period correlation between gold and the
// real yield. The pair is normally strongly negatively correlated; a
// weaker-than-usual reading is treated as hidden demand holding gold up
// against the rate headwind.
func (a *Analyzer) YieldDivergence(set *models.IndicatorSet) models.SignalResult {
	if set.Gold.IsEmpty() || set.RealYield.IsEmpty() {
		return models.SignalResult{
			Status: "Gold or real yield data unavailable",
			Signal: models.SignalNeutral,
		}
	}

	merged := timeseries.AlignDaily(set.Gold, set.RealYield)
	if merged.Len() < a.th.Lookback {
		return models.SignalResult{
			Status: "Insufficient data for correlation",
			Signal: models.SignalNeutral,
		}
	}

	window := merged.Tail(a.th.Lookback)
	corr, ok := timeseries.Correlation(window.Left, window.Right)
	if !ok {
		return models.SignalResult{
			Status: "Correlation undefined over the window",
			Signal: models.SignalNeutral,
		}
	}

	if corr > a.th.CorrelationCutoff {
		return models.SignalResult{
			Status: fmt.Sprintf("Divergence detected (corr: %.2f) - Hidden demand signal", corr),
			Signal: models.SignalBullish,
			Value:  models.Float(corr),
		}
	}
	return models.SignalResult{
		Status: fmt.Sprintf("Normal correlation (corr: %.2f)", corr),
		Signal: models.SignalNeutral,
		Value:  models.Float(corr),
	}
}
