package normalize

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

const (
	defaultPosition = "N/A"
	defaultNumber   = "0"
)

// RosterEntry normalizes one roster row. PLAYER_ID and PLAYER are required.
func RosterEntry(raw providers.RosterRecord) (players.RosterEntry, error) {
	id, err := raw.PlayerID.Int()
	if err != nil {
		return players.RosterEntry{}, malformed("PLAYER_ID", err)
	}
	name, ok := raw.Player.Text()
	if !ok {
		return players.RosterEntry{}, malformed("PLAYER", providers.ErrValueAbsent)
	}
	first, last := SplitName(name)

	return players.RosterEntry{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Position:  textOr(raw.Position, defaultPosition),
		Number:    textOr(raw.Num, defaultNumber),
		PhotoURL:  players.PhotoURL(id),
	}, nil
}

// Roster normalizes every row or fails on the first malformed one.
func Roster(raws []providers.RosterRecord) ([]players.RosterEntry, error) {
	out := make([]players.RosterEntry, 0, len(raws))
	for i, raw := range raws {
		entry, err := RosterEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("roster row %d: %w", i, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// SplitName splits a full name on whitespace. The first token is the first
// name and the rest, joined by single spaces, the last name. A single token
// fills both.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func textOr(v providers.Value, fallback string) string {
	if !v.Truthy() {
		return fallback
	}
	s, _ := v.Text()
	return s
}
