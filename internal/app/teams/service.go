package teams

import (
	"context"

	"github.com/preston-bernstein/nba-stats-gateway/internal/apperr"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/normalize"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// Service fetches the team list and normalizes it.
type Service struct {
	provider providers.TeamProvider
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.TeamProvider) *Service {
	return &Service{provider: provider}
}

// Teams returns every franchise. Any malformed entry fails the whole call.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	if s == nil || s.provider == nil {
		return nil, apperr.Upstream(providers.ErrProviderUnavailable)
	}
	raws, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	out, err := normalize.Teams(raws)
	if err != nil {
		return nil, apperr.Malformed(err)
	}
	return out, nil
}
