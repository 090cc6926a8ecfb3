package config

import (
	"fmt"
	"strconv"

	"github.com/preston-bernstein/nba-stats-gateway/internal/timeutil"
)

// Error is a configuration problem that must stop the process at startup.
type Error struct {
	Key    string
	Value  string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := "config: " + e.Reason
	if e.Key != "" {
		msg = fmt.Sprintf("config: %s=%q: %s", e.Key, e.Value, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validate checks values that env parsing alone cannot.
func (c Config) Validate() error {
	if err := validatePort(envPort, c.Port); err != nil {
		return err
	}
	if c.Metrics.Enabled {
		if err := validatePort(envMetricsPort, c.Metrics.Port); err != nil {
			return err
		}
	}
	if _, err := timeutil.ParseSeason(c.Season); err != nil {
		return &Error{Key: envSeason, Value: c.Season, Reason: "invalid season", Err: err}
	}
	if c.NBAStats.Timeout <= 0 {
		return &Error{Key: envNBAStatsTimeout, Value: c.NBAStats.Timeout.String(), Reason: "must be positive"}
	}
	if c.NBAStats.MinInterval < 0 {
		return &Error{Key: envMinInterval, Value: c.NBAStats.MinInterval.String(), Reason: "must not be negative"}
	}
	return nil
}

func validatePort(key, raw string) error {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return &Error{Key: key, Value: raw, Reason: "port must be an integer"}
	}
	if port < 1 || port > 65535 {
		return &Error{Key: key, Value: raw, Reason: "port out of range"}
	}
	return nil
}
