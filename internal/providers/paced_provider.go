package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-stats-gateway/internal/logging"
)

// DefaultPacingInterval keeps stats.nba.com from throttling bursts of lookups.
const DefaultPacingInterval = 600 * time.Millisecond

// pacedProvider wraps a DataProvider and enforces a minimum spacing between upstream lookups.
type pacedProvider struct {
	next     DataProvider
	interval time.Duration
	maxWait  time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewPacedProvider returns a DataProvider whose roster and game log lookups wait for the limiter.
// The team list is static and is not paced. A positive maxWait caps how long a lookup
// queues for its slot; lookups that would wait longer fail with ErrPacingTimeout.
func NewPacedProvider(next DataProvider, interval, maxWait time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = DefaultPacingInterval
	}
	return &pacedProvider{
		next:     next,
		interval: interval,
		maxWait:  maxWait,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
	}
}

func (p *pacedProvider) FetchTeams(ctx context.Context) ([]TeamRecord, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return p.next.FetchTeams(ctx)
}

func (p *pacedProvider) FetchRoster(ctx context.Context, teamID int, season string) ([]RosterRecord, error) {
	if err := p.wait(ctx, "roster"); err != nil {
		return nil, err
	}
	return p.next.FetchRoster(ctx, teamID, season)
}

func (p *pacedProvider) FetchGameLog(ctx context.Context, playerID int, season string) ([]GameLogRecord, error) {
	if err := p.wait(ctx, "gamelog"); err != nil {
		return nil, err
	}
	return p.next.FetchGameLog(ctx, playerID, season)
}

func (p *pacedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, "paced"))
		}
		return ErrProviderUnavailable
	}
	waitCtx := ctx
	if p.maxWait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, p.maxWait)
		defer cancel()
	}
	if err := p.limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "paced fetch canceled", slog.String(logging.FieldOperation, op))
			return ctx.Err()
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "paced fetch over wait budget",
			slog.String(logging.FieldOperation, op),
			slog.Duration("max_wait", p.maxWait),
		)
		return fmt.Errorf("%w (%s)", ErrPacingTimeout, p.maxWait)
	}
	return nil
}
