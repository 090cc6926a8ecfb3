package providers

import (
	"context"
	"sync/atomic"
)

type stubDataProvider struct {
	teams   []TeamRecord
	roster  []RosterRecord
	gamelog []GameLogRecord
	err     error
	calls   atomic.Int32
}

func (s *stubDataProvider) FetchTeams(ctx context.Context) ([]TeamRecord, error) {
	_ = ctx
	s.calls.Add(1)
	return s.teams, s.err
}

func (s *stubDataProvider) FetchRoster(ctx context.Context, teamID int, season string) ([]RosterRecord, error) {
	_ = ctx
	_ = teamID
	_ = season
	s.calls.Add(1)
	return s.roster, s.err
}

func (s *stubDataProvider) FetchGameLog(ctx context.Context, playerID int, season string) ([]GameLogRecord, error) {
	_ = ctx
	_ = playerID
	_ = season
	s.calls.Add(1)
	return s.gamelog, s.err
}
