package config

import "time"

const (
	envPort            = "PORT"
	envSeason          = "SEASON"
	envProvider        = "PROVIDER"
	envNBAStatsBaseURL = "NBA_STATS_BASE_URL"
	envNBAStatsTimeout = "NBA_STATS_TIMEOUT"
	envMinInterval     = "UPSTREAM_MIN_INTERVAL"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"

	defaultPort            = "3001"
	defaultSeason          = "2025-26"
	defaultProvider        = "nbastats"
	defaultNBAStatsBaseURL = "https://stats.nba.com/stats"
	// stats.nba.com is slow to answer cold roster lookups.
	defaultNBAStatsTimeout = 60 * time.Second
	defaultMinInterval     = 600 * time.Millisecond
)
