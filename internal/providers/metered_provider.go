package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-gateway/internal/logging"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
)

// meteredProvider records every upstream call in the metrics recorder.
type meteredProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
}

// NewMeteredProvider wraps the given provider with call metrics and failure logs.
func NewMeteredProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &meteredProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
	}
}

func (m *meteredProvider) FetchTeams(ctx context.Context) ([]TeamRecord, error) {
	if m.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	records, err := m.inner.FetchTeams(ctx)
	m.observe(ctx, "teams", start, err)
	return records, err
}

func (m *meteredProvider) FetchRoster(ctx context.Context, teamID int, season string) ([]RosterRecord, error) {
	if m.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	records, err := m.inner.FetchRoster(ctx, teamID, season)
	m.observe(ctx, "roster", start, err, slog.Int(logging.FieldTeamID, teamID))
	return records, err
}

func (m *meteredProvider) FetchGameLog(ctx context.Context, playerID int, season string) ([]GameLogRecord, error) {
	if m.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	records, err := m.inner.FetchGameLog(ctx, playerID, season)
	m.observe(ctx, "gamelog", start, err, slog.Int(logging.FieldPlayerID, playerID))
	return records, err
}

func (m *meteredProvider) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	elapsed := time.Since(start)
	m.metrics.RecordProviderAttempt(m.providerName, elapsed, err)
	if err == nil {
		return
	}
	if rl, ok := AsRateLimitError(err); ok {
		m.metrics.RecordRateLimit(m.providerName, rl.RetryAfter)
	}
	attrs = append(attrs,
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		"err", err,
	)
	logWithProvider(ctx, logging.FromContext(ctx, m.logger), slog.LevelWarn, m.providerName, "provider fetch failed", attrs...)
}
