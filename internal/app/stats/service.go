package stats

import (
	"context"

	"github.com/preston-bernstein/nba-stats-gateway/internal/apperr"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/normalize"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// GameLogWindow is the number of most recent games returned per player.
const GameLogWindow = 30

// Service fetches player game logs for a fixed season and normalizes them.
type Service struct {
	provider providers.GameLogProvider
	season   string
}

// NewService constructs a Service for the given season.
func NewService(provider providers.GameLogProvider, season string) *Service {
	return &Service{provider: provider, season: season}
}

// GameLog returns up to GameLogWindow stat lines in upstream order (most
// recent first). Rows beyond the window are never normalized.
func (s *Service) GameLog(ctx context.Context, playerID int) ([]stats.GameStat, error) {
	if s == nil || s.provider == nil {
		return nil, apperr.Upstream(providers.ErrProviderUnavailable)
	}
	raws, err := s.provider.FetchGameLog(ctx, playerID, s.season)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	if len(raws) > GameLogWindow {
		raws = raws[:GameLogWindow]
	}
	out, err := normalize.GameLog(raws)
	if err != nil {
		return nil, apperr.Malformed(err)
	}
	return out, nil
}
