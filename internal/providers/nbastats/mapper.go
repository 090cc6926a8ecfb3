package nbastats

import "github.com/preston-bernstein/nba-stats-gateway/internal/providers"

// row resolves cells by header name. Headers missing from the set, and rows
// shorter than the header list, yield absent values.
type row struct {
	index map[string]int
	cells []any
}

func (r row) get(header string) providers.Value {
	i, ok := r.index[header]
	if !ok || i >= len(r.cells) {
		return providers.Absent()
	}
	return providers.NewValue(r.cells[i])
}

func (s resultSet) rows() []row {
	index := make(map[string]int, len(s.Headers))
	for i, h := range s.Headers {
		index[h] = i
	}
	out := make([]row, 0, len(s.RowSet))
	for _, cells := range s.RowSet {
		out = append(out, row{index: index, cells: cells})
	}
	return out
}

func mapRoster(set resultSet) []providers.RosterRecord {
	rows := set.rows()
	out := make([]providers.RosterRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, providers.RosterRecord{
			TeamID:   r.get("TeamID"),
			PlayerID: r.get("PLAYER_ID"),
			Player:   r.get("PLAYER"),
			Num:      r.get("NUM"),
			Position: r.get("POSITION"),
		})
	}
	return out
}

func mapGameLog(set resultSet) []providers.GameLogRecord {
	rows := set.rows()
	out := make([]providers.GameLogRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, providers.GameLogRecord{
			GameID:    r.get("Game_ID"),
			GameDate:  r.get("GAME_DATE"),
			Matchup:   r.get("MATCHUP"),
			WL:        r.get("WL"),
			MIN:       r.get("MIN"),
			FGM:       r.get("FGM"),
			FGA:       r.get("FGA"),
			FGPct:     r.get("FG_PCT"),
			FG3M:      r.get("FG3M"),
			FG3A:      r.get("FG3A"),
			FG3Pct:    r.get("FG3_PCT"),
			FTM:       r.get("FTM"),
			FTA:       r.get("FTA"),
			FTPct:     r.get("FT_PCT"),
			OREB:      r.get("OREB"),
			DREB:      r.get("DREB"),
			REB:       r.get("REB"),
			AST:       r.get("AST"),
			STL:       r.get("STL"),
			BLK:       r.get("BLK"),
			TOV:       r.get("TOV"),
			PF:        r.get("PF"),
			PTS:       r.get("PTS"),
			PlusMinus: r.get("PLUS_MINUS"),
		})
	}
	return out
}

func mapTeam(entry map[string]any) providers.TeamRecord {
	get := func(key string) providers.Value {
		v, ok := entry[key]
		if !ok {
			return providers.Absent()
		}
		return providers.NewValue(v)
	}
	return providers.TeamRecord{
		ID:           get("id"),
		FullName:     get("full_name"),
		Abbreviation: get("abbreviation"),
		Nickname:     get("nickname"),
		City:         get("city"),
		State:        get("state"),
		YearFounded:  get("year_founded"),
	}
}
