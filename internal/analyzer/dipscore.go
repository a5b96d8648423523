package analyzer

import "GoldPulse/internal/domain/models"

// DipScore runs all six factor classifications and folds them into the
// entry recommendation. The bullish rule is evaluated before the bearish
// rule, so a 3/3 split resolves to GOOD_ENTRY deterministically.
func (a *Analyzer) DipScore(set *models.IndicatorSet) models.DipScore {
	checklist := map[string]models.SignalResult{
		models.FactorRealYield:       a.RealYield(set),
		models.FactorUSDStrength:     a.DXY(set),
		models.FactorRiskSentiment:   a.RiskSentiment(set),
		models.FactorINRMovement:     a.INR(set),
		models.FactorGoldSilverRatio: a.GoldSilverRatio(set),
		models.FactorYieldDivergence: a.YieldDivergence(set),
	}

	var bullish, bearish int
	for _, item := range checklist {
		switch item.Signal {
		case models.SignalBullish:
			bullish++
		case models.SignalBearish:
			bearish++
		}
	}

	var rec models.Recommendation
	switch {
	case bullish >= a.th.Majority:
		rec = models.RecommendGoodEntry
	case bearish >= a.th.Majority:
		rec = models.RecommendAvoid
	default:
		rec = models.RecommendNeutralWatch
	}

	return models.DipScore{
		Checklist:      checklist,
		BullishCount:   bullish,
		BearishCount:   bearish,
		Recommendation: rec,
	}
}

// Run produces the complete analysis: the six factor results plus the score.
func (a *Analyzer) Run(set *models.IndicatorSet) models.Analysis {
	return models.Analysis{
		RealYield:       a.RealYield(set),
		DXY:             a.DXY(set),
		RiskSentiment:   a.RiskSentiment(set),
		INR:             a.INR(set),
		GoldSilverRatio: a.GoldSilverRatio(set),
		Divergence:      a.YieldDivergence(set),
		DipScore:        a.DipScore(set),
	}
}
