package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-gateway/internal/config"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers/nbastats"
)

const (
	providerNBAStats = "nbastats"
	providerFixture  = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) (providers.DataProvider, string) {
	switch cfg.Provider {
	case providerNBAStats, "":
		return nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.NBAStats.BaseURL,
			Timeout: cfg.NBAStats.Timeout,
		}), providerNBAStats
	case providerFixture:
		return fixture.New(), providerFixture
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(), providerFixture
	}
}
