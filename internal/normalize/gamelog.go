package normalize

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

const (
	defaultResult   = "N/A"
	defaultTeamName = "N/A"
)

// GameStat normalizes one game log row.
func GameStat(raw providers.GameLogRecord) (stats.GameStat, error) {
	var f fieldParser
	out := stats.GameStat{
		Points:          f.count("PTS", raw.PTS),
		Rebounds:        f.count("REB", raw.REB),
		Assists:         f.count("AST", raw.AST),
		Steals:          f.count("STL", raw.STL),
		Blocks:          f.count("BLK", raw.BLK),
		Threes:          f.count("FG3M", raw.FG3M),
		ThreesAttempted: f.count("FG3A", raw.FG3A),
		FGPct:           f.percent("FG_PCT", raw.FGPct),
		FG3Pct:          f.percent("FG3_PCT", raw.FG3Pct),
		FTPct:           f.percent("FT_PCT", raw.FTPct),
		Turnovers:       f.count("TOV", raw.TOV),
		Fouls:           f.count("PF", raw.PF),
		PlusMinus:       f.count("PLUS_MINUS", raw.PlusMinus),
		OffRebounds:     f.count("OREB", raw.OREB),
		DefRebounds:     f.count("DREB", raw.DREB),
	}
	if f.err != nil {
		return stats.GameStat{}, f.err
	}

	minutes, err := Minutes(raw.MIN)
	if err != nil {
		return stats.GameStat{}, malformed("MIN", err)
	}
	out.MinutesPlayed = minutes

	date, _ := raw.GameDate.Text()
	matchup, _ := raw.Matchup.Text()
	out.Game = stats.GameInfo{
		Date:    stats.GameDate{Start: date},
		Result:  result(raw.WL),
		Matchup: matchup,
	}
	out.Team = stats.TeamInfo{Name: TeamFromMatchup(matchup)}
	return out, nil
}

// GameLog normalizes every row or fails on the first malformed one.
func GameLog(raws []providers.GameLogRecord) ([]stats.GameStat, error) {
	out := make([]stats.GameStat, 0, len(raws))
	for i, raw := range raws {
		stat, err := GameStat(raw)
		if err != nil {
			return nil, fmt.Errorf("game log row %d: %w", i, err)
		}
		out = append(out, stat)
	}
	return out, nil
}

// TeamFromMatchup returns the first token of a matchup such as "LAL @ BOS".
func TeamFromMatchup(matchup string) string {
	fields := strings.Fields(matchup)
	if len(fields) == 0 {
		return defaultTeamName
	}
	return fields[0]
}

func result(v providers.Value) string {
	if s, ok := v.Text(); ok && s != "" {
		return s
	}
	return defaultResult
}

// fieldParser keeps the first conversion error so a row can be built in one literal.
type fieldParser struct {
	err error
}

func (p *fieldParser) count(field string, v providers.Value) int {
	if p.err != nil || !v.Truthy() {
		return 0
	}
	n, err := v.Int()
	if err != nil {
		p.err = malformed(field, err)
		return 0
	}
	return n
}

func (p *fieldParser) percent(field string, v providers.Value) float64 {
	if p.err != nil || !v.Truthy() {
		return 0
	}
	ratio, err := v.Float()
	if err != nil {
		p.err = malformed(field, err)
		return 0
	}
	return ratio * 100
}
