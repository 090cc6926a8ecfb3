package providers

// TeamRecord is one entry of the upstream static team list.
type TeamRecord struct {
	ID           Value
	FullName     Value
	Abbreviation Value
	Nickname     Value
	City         Value
	State        Value
	YearFounded  Value
}

// RosterRecord is one row of the upstream team roster result set.
type RosterRecord struct {
	TeamID   Value
	PlayerID Value
	Player   Value
	Num      Value
	Position Value
}

// GameLogRecord is one row of the upstream player game log result set.
// Field names follow the upstream headers.
type GameLogRecord struct {
	GameID    Value
	GameDate  Value
	Matchup   Value
	WL        Value
	MIN       Value
	FGM       Value
	FGA       Value
	FGPct     Value
	FG3M      Value
	FG3A      Value
	FG3Pct    Value
	FTM       Value
	FTA       Value
	FTPct     Value
	OREB      Value
	DREB      Value
	REB       Value
	AST       Value
	STL       Value
	BLK       Value
	TOV       Value
	PF        Value
	PTS       Value
	PlusMinus Value
}
