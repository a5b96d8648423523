package di

import (
	"fmt"

	"GoldPulse/internal/analyzer"
	"GoldPulse/internal/domain/repository"
	"GoldPulse/internal/fetcher"
	"GoldPulse/internal/handler/api"
	"GoldPulse/internal/scheduler"
	"GoldPulse/internal/service/fred"
	"GoldPulse/internal/service/yahoo"
	"GoldPulse/internal/usecase"
	"GoldPulse/pkg/cache"
	"GoldPulse/pkg/config"
	xhttp "GoldPulse/pkg/http"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/metrics"
	"GoldPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache creates the cache backend selected by config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	memOpts := []cache.MemoryOption{
		cache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize),
		cache.WithMemoryCleanupInterval(cfg.Cache.Memory.CleanupInterval),
	}
	redisOpts := []cache.RedisOption{
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	}

	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(memOpts...), nil
	case "redis":
		rc, err := cache.NewRedisCache(redisOpts...)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, nil
	case "layered":
		rc, err := cache.NewRedisCache(redisOpts...)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(rc, memOpts...), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRateSource creates the FRED client.
func ProvideRateSource(cfg *config.Config, l *applogger.Logger) repository.RateSource {
	return fred.New(cfg.FRED.APIKey, cfg.FRED.BaseURL, cfg.FRED.Timeout, l)
}

// ProvideQuoteSource creates the Yahoo Finance client.
func ProvideQuoteSource(cfg *config.Config, l *applogger.Logger) repository.QuoteSource {
	return yahoo.New(cfg.Yahoo.BaseURL, cfg.Yahoo.Timeout, cfg.Yahoo.RetryMax, l)
}

// ProvideFetcher creates the indicator fetcher.
func ProvideFetcher(
	rates repository.RateSource,
	quotes repository.QuoteSource,
	cacheSvc cache.Service,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *fetcher.Fetcher {
	return fetcher.New(rates, quotes, cacheSvc, m, l, fetcher.Config{
		Treasury10Y: cfg.FRED.Series.Treasury10Y,
		CPI:         cfg.FRED.Series.CPI,
		DollarIndex: cfg.FRED.Series.DollarIndex,
		VIX:         cfg.Yahoo.Tickers.VIX,
		SP500:       cfg.Yahoo.Tickers.SP500,
		Nifty:       cfg.Yahoo.Tickers.Nifty,
		Gold:        cfg.Yahoo.Tickers.Gold,
		Silver:      cfg.Yahoo.Tickers.Silver,
		USDINR:      cfg.Yahoo.Tickers.USDINR,
		Range:       cfg.Yahoo.Range,
		Interval:    cfg.Yahoo.Interval,
		TTL:         cfg.Cache.TTL,
	})
}

// ProvideAnalyzer creates the signal classifier with configured thresholds.
func ProvideAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	t := cfg.Thresholds
	return analyzer.New(analyzer.Thresholds{
		VIXLow:            t.VIXLow,
		VIXHigh:           t.VIXHigh,
		GoldSilverHigh:    t.GoldSilverHigh,
		GoldSilverLow:     t.GoldSilverLow,
		RealYieldCritical: t.RealYieldCritical,
		DXYMovePct:        t.DXYMovePct,
		INRMovePct:        t.INRMovePct,
		RealYieldMove:     t.RealYieldMove,
		CorrelationCutoff: t.CorrelationCutoff,
		EquityRallyPct:    t.EquityRallyPct,
		Lookback:          t.Lookback,
		Majority:          t.Majority,
	})
}

// ProvideAnalysisUseCase creates the analysis orchestrator.
func ProvideAnalysisUseCase(
	f *fetcher.Fetcher,
	a *analyzer.Analyzer,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(f, a, m, l)
}

// ProvideHTTPHandler creates the API handler.
func ProvideHTTPHandler(l *applogger.Logger, uc *usecase.AnalysisUseCase) xhttp.Handler {
	return api.NewAnalysisHandler(l, uc)
}

// ProvideHTTPServer creates the HTTP server.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, l *applogger.Logger) *xhttp.Server {
	return xhttp.NewServer(h, l,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
}

// ProvideScheduler creates the periodic refresh scheduler.
func ProvideScheduler(uc *usecase.AnalysisUseCase, l *applogger.Logger, cfg *config.Config) *scheduler.Scheduler {
	return scheduler.New(uc, l, cfg.Refresh.Schedule)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	sched *scheduler.Scheduler,
	cacheSvc cache.Service,
) *server.App {
	return server.New(cfg, l, httpServer, sched, cacheSvc)
}
