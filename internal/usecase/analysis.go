package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GoldPulse/internal/analyzer"
	"GoldPulse/internal/domain/models"
	drepo "GoldPulse/internal/domain/repository"
	"GoldPulse/internal/fetcher"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"
	"GoldPulse/pkg/util"
)

// ErrUnknownFactor marks a factor slug with no registered classifier.
var ErrUnknownFactor = errors.New("unknown analysis factor")

// AnalysisUseCase orchestrates a full dip analysis: assemble indicators,
// classify each factor, aggregate the score.
type AnalysisUseCase struct {
	fetcher  *fetcher.Fetcher
	analyzer *analyzer.Analyzer
	metrics  drepo.Metrics
	logger   *applogger.Logger
	timeout  time.Duration
}

func NewAnalysisUseCase(f *fetcher.Fetcher, a *analyzer.Analyzer, m drepo.Metrics, l *applogger.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		fetcher:  f,
		analyzer: a,
		metrics:  m,
		logger:   l,
		timeout:  60 * time.Second,
	}
}

// Full runs the complete analysis across all six factors.
func (uc *AnalysisUseCase) Full(ctx context.Context) (*models.FullAnalysisResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	set := uc.fetcher.IndicatorSet(ctx)
	analysis := uc.analyzer.Run(set)
	uc.metrics.RecordAnalysisDuration(time.Since(start).Seconds())
	uc.metrics.RecordRecommendation(string(analysis.DipScore.Recommendation))

	uc.logger.Info("analysis complete",
		applogger.String("recommendation", string(analysis.DipScore.Recommendation)),
		applogger.Int("bullish", analysis.DipScore.BullishCount),
		applogger.Int("bearish", analysis.DipScore.BearishCount),
		applogger.Duration("took", time.Since(start)))

	return &models.FullAnalysisResponse{
		Timestamp: time.Now().UTC(),
		Analysis:  analysis,
	}, nil
}

// Factor runs a single factor classification, addressed by its URL slug.
func (uc *AnalysisUseCase) Factor(ctx context.Context, slug string) (*models.FactorAnalysisResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	type classifier struct {
		name string
		fn   func(*models.IndicatorSet) models.SignalResult
	}
	classifiers := map[string]classifier{
		"real-yield":        {models.FactorRealYield, uc.analyzer.RealYield},
		"dxy":               {models.FactorUSDStrength, uc.analyzer.DXY},
		"risk-sentiment":    {models.FactorRiskSentiment, uc.analyzer.RiskSentiment},
		"inr":               {models.FactorINRMovement, uc.analyzer.INR},
		"gold-silver-ratio": {models.FactorGoldSilverRatio, uc.analyzer.GoldSilverRatio},
		"divergence":        {models.FactorYieldDivergence, uc.analyzer.YieldDivergence},
	}

	cl, ok := classifiers[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFactor, slug)
	}

	set := uc.fetcher.IndicatorSet(ctx)
	return &models.FactorAnalysisResponse{
		Factor:    cl.name,
		Result:    cl.fn(set),
		Timestamp: time.Now().UTC(),
	}, nil
}

// DipDetection returns only the checklist and recommendation.
func (uc *AnalysisUseCase) DipDetection(ctx context.Context) (*models.DipDetectionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	set := uc.fetcher.IndicatorSet(ctx)
	score := uc.analyzer.DipScore(set)
	uc.metrics.RecordAnalysisDuration(time.Since(start).Seconds())
	uc.metrics.RecordRecommendation(string(score.Recommendation))

	return &models.DipDetectionResponse{
		Recommendation: score.Recommendation,
		BullishCount:   score.BullishCount,
		BearishCount:   score.BearishCount,
		NeutralCount:   len(score.Checklist) - score.BullishCount - score.BearishCount,
		Checklist:      score.Checklist,
	}, nil
}

// GoldPrice returns the latest India-adjusted gold price.
func (uc *AnalysisUseCase) GoldPrice(ctx context.Context) (*models.GoldPriceResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	set := uc.fetcher.IndicatorSet(ctx)
	ig := set.IndianGold
	if ig.IsEmpty() {
		return nil, fmt.Errorf("gold price unavailable: no upstream data")
	}

	inr, _ := ig.INR10g.LastValue()
	usd, _ := ig.USD10g.LastValue()
	rate, _ := ig.USDINR.LastValue()

	return &models.GoldPriceResponse{
		GoldINR10g: inr,
		GoldUSD10g: usd,
		USDINR:     rate,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// MarketIndicators returns the latest value of each headline indicator.
// Indicators without data come back nil rather than zero.
func (uc *AnalysisUseCase) MarketIndicators(ctx context.Context) (*models.MarketIndicatorsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	set := uc.fetcher.IndicatorSet(ctx)

	last := func(s timeseries.Series) *float64 {
		if v, ok := s.LastValue(); ok {
			return models.Float(v)
		}
		return nil
	}

	return &models.MarketIndicatorsResponse{
		RealYield:       last(set.RealYield),
		DXY:             last(set.DXY),
		VIX:             last(set.VIX),
		GoldSilverRatio: last(set.GoldSilverRatio),
		Timestamp:       time.Now().UTC(),
	}, nil
}

// HistoricalGold returns the last days of the India-adjusted gold series.
func (uc *AnalysisUseCase) HistoricalGold(ctx context.Context, days int) (*models.HistoricalGoldResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	set := uc.fetcher.IndicatorSet(ctx)
	ig := set.IndianGold
	if ig.IsEmpty() {
		return nil, fmt.Errorf("historical gold unavailable: no upstream data")
	}

	// The three series come from one inner join, so indices line up.
	offset := ig.INR10g.Len() - days
	if offset < 0 {
		offset = 0
	}

	points := make([]models.HistoricalGoldPoint, 0, ig.INR10g.Len()-offset)
	for i := offset; i < ig.INR10g.Len(); i++ {
		points = append(points, models.HistoricalGoldPoint{
			Date:       util.FormatDate(ig.INR10g[i].Date),
			GoldINR10g: ig.INR10g[i].Value,
			GoldUSD10g: ig.USD10g[i].Value,
			USDINR:     ig.USDINR[i].Value,
		})
	}

	return &models.HistoricalGoldResponse{
		Data:      points,
		Count:     len(points),
		Timestamp: time.Now().UTC(),
	}, nil
}

// Refresh drops cached market data and rebuilds the indicator bundle.
// Used by the scheduled refresh, not exposed over HTTP.
func (uc *AnalysisUseCase) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	set := uc.fetcher.Refresh(ctx)
	analysis := uc.analyzer.Run(set)
	uc.metrics.RecordAnalysisDuration(time.Since(start).Seconds())
	uc.metrics.RecordRecommendation(string(analysis.DipScore.Recommendation))

	uc.logger.Info("scheduled refresh complete",
		applogger.String("recommendation", string(analysis.DipScore.Recommendation)),
		applogger.Duration("took", time.Since(start)))
}
