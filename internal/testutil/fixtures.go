package testutil

import (
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id int) teams.Team {
	return teams.Team{
		ID:           id,
		Name:         "Los Angeles Lakers",
		Abbreviation: "LAL",
		City:         "Los Angeles",
	}
}

// SampleRosterEntry returns a roster entry fixture with the provided player id.
func SampleRosterEntry(id int) players.RosterEntry {
	return players.RosterEntry{
		ID:        id,
		FirstName: "LeBron",
		LastName:  "James",
		Position:  "F",
		Number:    "23",
		PhotoURL:  players.PhotoURL(id),
	}
}

// SampleGameStat returns a stat line fixture scoring the given points.
func SampleGameStat(points int) stats.GameStat {
	return stats.GameStat{
		Points:        points,
		Rebounds:      8,
		Assists:       9,
		FGPct:         50,
		MinutesPlayed: 32.5,
		Game: stats.GameInfo{
			Date:    stats.GameDate{Start: "OCT 22, 2025"},
			Result:  "W",
			Matchup: "LAL vs. GSW",
		},
		Team: stats.TeamInfo{Name: "LAL"},
	}
}
