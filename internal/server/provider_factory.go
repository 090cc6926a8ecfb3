package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-gateway/internal/config"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (metrics + pacing).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base, name := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base, name)
}

// wrap meters every upstream call, then paces roster and game log lookups so
// bursts of requests do not hammer the upstream.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider, name string) providers.DataProvider {
	metered := providers.NewMeteredProvider(base, f.logger, f.metrics, normalizeProviderName(name, base))
	return providers.NewPacedProvider(metered, cfg.NBAStats.MinInterval, pacingWaitFor(cfg.NBAStats.MinInterval), f.logger)
}
