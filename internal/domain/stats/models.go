package stats

// GameDate wraps the upstream game date string.
type GameDate struct {
	Start string `json:"start"`
}

// GameInfo describes the game a stat line belongs to.
type GameInfo struct {
	Date    GameDate `json:"date"`
	Result  string   `json:"result"`
	Matchup string   `json:"matchup"`
}

// TeamInfo names the player's team for the game.
type TeamInfo struct {
	Name string `json:"name"`
}

// GameStat is one box-score line from a player's game log.
type GameStat struct {
	Points          int     `json:"points"`
	Rebounds        int     `json:"totReb"`
	Assists         int     `json:"assists"`
	Steals          int     `json:"steals"`
	Blocks          int     `json:"blocks"`
	Threes          int     `json:"threes"`
	ThreesAttempted int     `json:"threesAttempted"`
	FGPct           float64 `json:"fgPct"`
	FG3Pct          float64 `json:"fg3Pct"`
	FTPct           float64 `json:"ftPct"`
	MinutesPlayed   float64 `json:"minutesPlayed"`
	Turnovers       int     `json:"turnovers"`
	Fouls           int     `json:"fouls"`
	PlusMinus       int     `json:"plusMinus"`
	OffRebounds     int     `json:"oreb"`
	DefRebounds     int     `json:"dreb"`

	Game GameInfo `json:"game"`
	Team TeamInfo `json:"team"`
}

// ListResponse is the /api/stats/{playerId} payload.
type ListResponse struct {
	Response []GameStat `json:"response"`
	Results  int        `json:"results"`
}

// NewListResponse wraps stat lines with their count.
func NewListResponse(items []GameStat) ListResponse {
	if items == nil {
		items = []GameStat{}
	}
	return ListResponse{Response: items, Results: len(items)}
}
