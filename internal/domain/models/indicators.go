package models

import (
	"GoldPulse/pkg/timeseries"
)

// IndianGold carries the India-adjusted gold price series, aligned on date:
// the INR retail price per 10 grams (duty and tax markup applied), the
// USD price per 10 grams (unit conversion only) and the USD/INR rate used.
type IndianGold struct {
	INR10g timeseries.Series `json:"gold_inr"`
	USD10g timeseries.Series `json:"gold_usd_10g"`
	USDINR timeseries.Series `json:"usdinr"`
}

// IsEmpty reports whether the price calculation produced no rows.
func (g IndianGold) IsEmpty() bool { return g.INR10g.IsEmpty() }

// IndicatorSet is the full bundle of raw and derived series for one analysis
// run. Constructed once per run and read-only afterward. Partial population
// is the norm: any series may be empty when its upstream source was
// unavailable, and every consumer must treat empty as "no data", not zero.
type IndicatorSet struct {
	RealYield       timeseries.Series
	DXY             timeseries.Series
	VIX             timeseries.Series
	SP500           timeseries.Series
	Nifty           timeseries.Series
	USDINR          timeseries.Series
	Gold            timeseries.Series
	Silver          timeseries.Series
	GoldSilverRatio timeseries.Series
	IndianGold      IndianGold
}
