package normalize

import (
	"encoding/json"

	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

func num(raw string) providers.Value {
	return providers.NewValue(json.Number(raw))
}

func str(raw string) providers.Value {
	return providers.NewValue(raw)
}

func null() providers.Value {
	return providers.NewValue(nil)
}

// fullGameRow mirrors a complete playergamelog row.
func fullGameRow() providers.GameLogRecord {
	return providers.GameLogRecord{
		GameID:    str("0022500101"),
		GameDate:  str("OCT 22, 2025"),
		Matchup:   str("LAL vs. GSW"),
		WL:        str("W"),
		MIN:       str("32:30"),
		FGM:       num("10"),
		FGA:       num("20"),
		FGPct:     num("0.5"),
		FG3M:      num("3"),
		FG3A:      num("8"),
		FG3Pct:    num("0.375"),
		FTM:       num("4"),
		FTA:       num("4"),
		FTPct:     num("1"),
		OREB:      num("2"),
		DREB:      num("6"),
		REB:       num("8"),
		AST:       num("9"),
		STL:       num("1"),
		BLK:       num("2"),
		TOV:       num("4"),
		PF:        num("3"),
		PTS:       num("27"),
		PlusMinus: num("-5"),
	}
}
