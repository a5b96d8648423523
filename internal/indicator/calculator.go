package indicator

import (
	"GoldPulse/internal/domain/models"
	"GoldPulse/pkg/timeseries"
)

const (
	// 1 troy oz = 31.1035 grams; India quotes retail gold per 10 grams.
	OzTo10Gram = 10.0 / 31.1035

	// Composite approximation of import duty + GST + retail margin.
	// A snapshot constant, not a live tax computation.
	IndianMarkup = 1.13

	// Months of CPI history required before year-over-year inflation is
	// preferred over the annualized short-window fallback.
	minCPIObservationsForYoY = 12

	yoyLagDays      = 365
	fallbackLagDays = 30
	monthsPerYear   = 12
)

// RealYield derives the real-yield series: nominal 10Y treasury yield minus
// the annualized inflation rate, inner-joined on date. Inflation comes from
// CPI year-over-year percent change when at least a year of monthly
// observations exists; a freshly started series cannot supply that history,
// so it falls back to the 30-day change annualized. Returns an empty series
// when either input is empty or no dates overlap.
func RealYield(treasury, cpi timeseries.Series) timeseries.Series {
	if treasury.IsEmpty() || cpi.IsEmpty() {
		return nil
	}

	cpiDaily := cpi.ResampleDaily()

	var inflation timeseries.Series
	if timeseries.Normalize(cpi).Len() >= minCPIObservationsForYoY {
		inflation = cpiDaily.PctChangeLag(yoyLagDays)
	} else {
		inflation = cpiDaily.PctChangeLag(fallbackLagDays).Scale(monthsPerYear)
	}
	if inflation.IsEmpty() {
		return nil
	}

	merged := timeseries.Join(treasury, inflation)
	if merged.Len() == 0 {
		return nil
	}
	return merged.Map(func(yield, infl float64) float64 { return yield - infl })
}

// GoldSilverRatio computes the pointwise gold/silver price ratio across the
// full overlap of both series, so a historical ratio series is available for
// charting and threshold checks, not just the latest point.
func GoldSilverRatio(gold, silver timeseries.Series) timeseries.Series {
	if gold.IsEmpty() || silver.IsEmpty() {
		return nil
	}

	merged := timeseries.Join(gold, silver)
	out := make(timeseries.Series, 0, merged.Len())
	for i := range merged.Dates {
		if merged.Right[i] == 0 {
			continue
		}
		out = append(out, timeseries.Point{
			Date:  merged.Dates[i],
			Value: merged.Left[i] / merged.Right[i],
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IndianGoldPrice converts the USD/oz gold price into the Indian retail
// price per 10 grams: currency conversion, unit conversion, then the duty
// and tax markup. The USD 10-gram series (no markup) is exposed alongside
// for comparison.
func IndianGoldPrice(gold, usdinr timeseries.Series) models.IndianGold {
	if gold.IsEmpty() || usdinr.IsEmpty() {
		return models.IndianGold{}
	}

	merged := timeseries.Join(gold, usdinr)
	if merged.Len() == 0 {
		return models.IndianGold{}
	}

	return models.IndianGold{
		INR10g: merged.Map(func(usd, inr float64) float64 {
			return usd * inr * OzTo10Gram * IndianMarkup
		}),
		USD10g: merged.Map(func(usd, _ float64) float64 {
			return usd * OzTo10Gram
		}),
		USDINR: merged.Map(func(_, inr float64) float64 {
			return inr
		}),
	}
}
