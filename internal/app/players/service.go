package players

import (
	"context"

	"github.com/preston-bernstein/nba-stats-gateway/internal/apperr"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/normalize"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// Service fetches team rosters for a fixed season and normalizes them.
type Service struct {
	provider providers.RosterProvider
	season   string
}

// NewService constructs a Service for the given season.
func NewService(provider providers.RosterProvider, season string) *Service {
	return &Service{provider: provider, season: season}
}

// Roster returns the roster of teamID. Any malformed row fails the whole call.
func (s *Service) Roster(ctx context.Context, teamID int) ([]players.RosterEntry, error) {
	if s == nil || s.provider == nil {
		return nil, apperr.Upstream(providers.ErrProviderUnavailable)
	}
	raws, err := s.provider.FetchRoster(ctx, teamID, s.season)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	out, err := normalize.Roster(raws)
	if err != nil {
		return nil, apperr.Malformed(err)
	}
	return out, nil
}

// Season reports the season rosters are requested for.
func (s *Service) Season() string {
	return s.season
}
