package normalize

import (
	"fmt"

	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// Team projects an upstream team entry. id and full_name are required.
func Team(raw providers.TeamRecord) (teams.Team, error) {
	id, err := raw.ID.Int()
	if err != nil {
		return teams.Team{}, malformed("id", err)
	}
	name, ok := raw.FullName.Text()
	if !ok {
		return teams.Team{}, malformed("full_name", providers.ErrValueAbsent)
	}
	abbreviation, _ := raw.Abbreviation.Text()
	city, _ := raw.City.Text()

	return teams.Team{
		ID:           id,
		Name:         name,
		Abbreviation: abbreviation,
		City:         city,
	}, nil
}

// Teams normalizes every entry or fails on the first malformed one.
func Teams(raws []providers.TeamRecord) ([]teams.Team, error) {
	out := make([]teams.Team, 0, len(raws))
	for i, raw := range raws {
		team, err := Team(raw)
		if err != nil {
			return nil, fmt.Errorf("team %d: %w", i, err)
		}
		out = append(out, team)
	}
	return out, nil
}
