package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Teams   []providers.TeamRecord
	Roster  []providers.RosterRecord
	GameLog []providers.GameLogRecord
	Err     error
	Calls   atomic.Int32

	LastTeamID   int
	LastPlayerID int
	LastSeason   string
}

// FetchTeams returns configured teams and error while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context) ([]providers.TeamRecord, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Teams, s.Err
}

// FetchRoster returns the configured roster and records the arguments.
func (s *StubProvider) FetchRoster(ctx context.Context, teamID int, season string) ([]providers.RosterRecord, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastTeamID = teamID
	s.LastSeason = season
	return s.Roster, s.Err
}

// FetchGameLog returns the configured game log and records the arguments.
func (s *StubProvider) FetchGameLog(ctx context.Context, playerID int, season string) ([]providers.GameLogRecord, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastPlayerID = playerID
	s.LastSeason = season
	return s.GameLog, s.Err
}

// StubTeamsService is a test double for the teams pipeline.
type StubTeamsService struct {
	Items []teams.Team
	Err   error
}

func (s *StubTeamsService) Teams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return s.Items, s.Err
}

// StubRosterService is a test double for the roster pipeline.
type StubRosterService struct {
	Items  []players.RosterEntry
	Err    error
	TeamID int
}

func (s *StubRosterService) Roster(ctx context.Context, teamID int) ([]players.RosterEntry, error) {
	_ = ctx
	s.TeamID = teamID
	return s.Items, s.Err
}

// StubGameLogService is a test double for the game log pipeline.
type StubGameLogService struct {
	Items    []stats.GameStat
	Err      error
	PlayerID int
}

func (s *StubGameLogService) GameLog(ctx context.Context, playerID int) ([]stats.GameStat, error) {
	_ = ctx
	s.PlayerID = playerID
	return s.Items, s.Err
}
