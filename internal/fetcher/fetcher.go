package fetcher

import (
	"context"
	"sync"
	"time"

	"GoldPulse/internal/domain/models"
	drepo "GoldPulse/internal/domain/repository"
	"GoldPulse/internal/indicator"
	"GoldPulse/pkg/cache"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/timeseries"
)

// historyYears bounds how far back rate series are requested. Two years
// covers the year-over-year inflation window plus the analysis lookback.
const historyYears = 2

// Config selects which upstream series feed each indicator.
type Config struct {
	// FRED series IDs.
	Treasury10Y string
	CPI         string
	DollarIndex string

	// Yahoo tickers.
	VIX    string
	SP500  string
	Nifty  string
	Gold   string
	Silver string
	USDINR string

	// Yahoo query window.
	Range    string
	Interval string

	TTL time.Duration
}

// Fetcher assembles the indicator bundle for one analysis run. Each upstream
// series is cached independently so a refresh only re-fetches what expired.
type Fetcher struct {
	rates   drepo.RateSource
	quotes  drepo.QuoteSource
	cache   cache.Service
	metrics drepo.Metrics
	logger  *applogger.Logger
	cfg     Config
}

// New creates a Fetcher.
func New(rates drepo.RateSource, quotes drepo.QuoteSource, cacheSvc cache.Service, metrics drepo.Metrics, l *applogger.Logger, cfg Config) *Fetcher {
	return &Fetcher{
		rates:   rates,
		quotes:  quotes,
		cache:   cacheSvc,
		metrics: metrics,
		logger:  l,
		cfg:     cfg,
	}
}

// IndicatorSet fetches every upstream series concurrently and derives the
// computed indicators. A failed source yields an empty series, never an
// error: downstream analysis degrades per-factor instead of failing whole.
func (f *Fetcher) IndicatorSet(ctx context.Context) *models.IndicatorSet {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		set models.IndicatorSet
	)

	fetch := func(assign func(*models.IndicatorSet, timeseries.Series), get func() timeseries.Series) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := get()
			mu.Lock()
			assign(&set, s)
			mu.Unlock()
		}()
	}

	var treasury, cpi timeseries.Series
	wg.Add(2)
	go func() {
		defer wg.Done()
		treasury = f.rateSeries(ctx, f.cfg.Treasury10Y)
	}()
	go func() {
		defer wg.Done()
		cpi = f.rateSeries(ctx, f.cfg.CPI)
	}()

	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.DXY = v },
		func() timeseries.Series { return f.rateSeries(ctx, f.cfg.DollarIndex) })
	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.VIX = v },
		func() timeseries.Series { return f.quoteSeries(ctx, f.cfg.VIX) })
	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.SP500 = v },
		func() timeseries.Series { return f.quoteSeries(ctx, f.cfg.SP500) })
	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.Nifty = v },
		func() timeseries.Series { return f.quoteSeries(ctx, f.cfg.Nifty) })
	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.USDINR = v },
		func() timeseries.Series { return f.quoteSeries(ctx, f.cfg.USDINR) })
	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.Gold = v },
		func() timeseries.Series { return f.quoteSeries(ctx, f.cfg.Gold) })
	fetch(func(s *models.IndicatorSet, v timeseries.Series) { s.Silver = v },
		func() timeseries.Series { return f.quoteSeries(ctx, f.cfg.Silver) })

	wg.Wait()

	set.RealYield = indicator.RealYield(treasury, cpi)
	set.GoldSilverRatio = indicator.GoldSilverRatio(set.Gold, set.Silver)
	set.IndianGold = indicator.IndianGoldPrice(set.Gold, set.USDINR)

	f.recordGauges(&set)

	return &set
}

func (f *Fetcher) rateSeries(ctx context.Context, seriesID string) timeseries.Series {
	key := cache.Key("fred", seriesID)

	var cached timeseries.Series
	if err := f.cache.Get(ctx, key, &cached); err == nil {
		return cached
	}

	end := time.Now().UTC()
	start := end.AddDate(-historyYears, 0, 0)

	series, err := f.rates.Series(ctx, seriesID, start, end)
	if err != nil {
		f.metrics.RecordFetchError("fred", seriesID)
		f.logger.Error("rate series fetch failed",
			applogger.String("series", seriesID),
			applogger.Error(err))
		return timeseries.Series{}
	}
	f.metrics.RecordFetch("fred", seriesID)

	if err := f.cache.Set(ctx, key, series, f.cfg.TTL); err != nil {
		f.logger.Warn("cache set failed", applogger.String("key", key), applogger.Error(err))
	}
	return series
}

func (f *Fetcher) quoteSeries(ctx context.Context, ticker string) timeseries.Series {
	key := cache.Key("yahoo", ticker, f.cfg.Range, f.cfg.Interval)

	var cached timeseries.Series
	if err := f.cache.Get(ctx, key, &cached); err == nil {
		return cached
	}

	series, err := f.quotes.History(ctx, ticker, f.cfg.Range, f.cfg.Interval)
	if err != nil {
		f.metrics.RecordFetchError("yahoo", ticker)
		f.logger.Error("quote history fetch failed",
			applogger.String("ticker", ticker),
			applogger.Error(err))
		return timeseries.Series{}
	}
	f.metrics.RecordFetch("yahoo", ticker)

	if err := f.cache.Set(ctx, key, series, f.cfg.TTL); err != nil {
		f.logger.Warn("cache set failed", applogger.String("key", key), applogger.Error(err))
	}
	return series
}

// Refresh drops cached upstream series and fetches them anew.
func (f *Fetcher) Refresh(ctx context.Context) *models.IndicatorSet {
	keys := []string{
		cache.Key("fred", f.cfg.Treasury10Y),
		cache.Key("fred", f.cfg.CPI),
		cache.Key("fred", f.cfg.DollarIndex),
	}
	for _, t := range []string{f.cfg.VIX, f.cfg.SP500, f.cfg.Nifty, f.cfg.USDINR, f.cfg.Gold, f.cfg.Silver} {
		keys = append(keys, cache.Key("yahoo", t, f.cfg.Range, f.cfg.Interval))
	}
	if err := f.cache.Delete(ctx, keys...); err != nil {
		f.logger.Warn("cache invalidation failed", applogger.Error(err))
	}
	return f.IndicatorSet(ctx)
}

func (f *Fetcher) recordGauges(set *models.IndicatorSet) {
	record := func(name string, s timeseries.Series) {
		if v, ok := s.LastValue(); ok {
			f.metrics.RecordIndicator(name, v)
		}
	}
	record("real_yield", set.RealYield)
	record("dxy", set.DXY)
	record("vix", set.VIX)
	record("gold_silver_ratio", set.GoldSilverRatio)
	record("gold_usd", set.Gold)
	record("gold_inr_10g", set.IndianGold.INR10g)
}
