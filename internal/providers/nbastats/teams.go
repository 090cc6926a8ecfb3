package nbastats

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

//go:embed teams.json
var teamsJSON []byte

var staticTeams = sync.OnceValues(func() ([]providers.TeamRecord, error) {
	return decodeTeams(teamsJSON)
})

func decodeTeams(raw []byte) ([]providers.TeamRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var entries []map[string]any
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%s: decode static teams: %w", providerName, err)
	}
	out := make([]providers.TeamRecord, 0, len(entries))
	for _, entry := range entries {
		out = append(out, mapTeam(entry))
	}
	return out, nil
}
