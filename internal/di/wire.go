//go:build wireinject
// +build wireinject

package di

import (
	"GoldPulse/pkg/config"
	"GoldPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Market data sources
		ProvideRateSource,
		ProvideQuoteSource,

		// Core pipeline
		ProvideFetcher,
		ProvideAnalyzer,
		ProvideAnalysisUseCase,

		// Surfaces
		ProvideHTTPHandler,
		ProvideHTTPServer,
		ProvideScheduler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
