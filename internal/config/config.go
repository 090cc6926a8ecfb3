package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the gateway. It is read once at startup.
type Config struct {
	Port     string `env:"PORT" envDefault:"3001"`
	Season   string `env:"SEASON" envDefault:"2025-26"`
	Provider string `env:"PROVIDER" envDefault:"nbastats"`
	NBAStats NBAStatsConfig
	CORS     CORSConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL string        `env:"NBA_STATS_BASE_URL" envDefault:"https://stats.nba.com/stats"`
	Timeout time.Duration `env:"NBA_STATS_TIMEOUT" envDefault:"60s"`
	// MinInterval spaces roster and game log lookups.
	MinInterval time.Duration `env:"UPSTREAM_MIN_INTERVAL" envDefault:"600ms"`
}

// CORSConfig lists the front-end origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables and validates it.
// Any failure is returned as a *Error.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, &Error{Reason: "parse environment", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
