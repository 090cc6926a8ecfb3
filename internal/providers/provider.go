package providers

import "context"

// TeamProvider returns the static list of franchises.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]TeamRecord, error)
}

// RosterProvider looks up a team roster for a season string such as "2025-26".
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID int, season string) ([]RosterRecord, error)
}

// GameLogProvider looks up a player's game log for a season, most recent game first.
type GameLogProvider interface {
	FetchGameLog(ctx context.Context, playerID int, season string) ([]GameLogRecord, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	RosterProvider
	GameLogProvider
}
