package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// GameLogSize is the number of rows returned by FetchGameLog.
const GameLogSize = 45

// Provider returns static data useful for local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

type fixtureTeam struct {
	id      int
	name    string
	abbr    string
	nick    string
	city    string
	state   string
	founded int
}

var fixtureTeams = []fixtureTeam{
	{1610612738, "Boston Celtics", "BOS", "Celtics", "Boston", "Massachusetts", 1946},
	{1610612744, "Golden State Warriors", "GSW", "Warriors", "Golden State", "California", 1946},
	{1610612747, "Los Angeles Lakers", "LAL", "Lakers", "Los Angeles", "California", 1948},
	{1610612748, "Miami Heat", "MIA", "Heat", "Miami", "Florida", 1988},
}

var fixturePlayers = []struct {
	id       int
	name     string
	num      any
	position any
}{
	{2544, "LeBron James", "23", "F"},
	{1629029, "Luka Doncic", "77", "G-F"},
	{1630559, "Austin Reaves", "15", "G"},
	{1641733, "Bronny James", nil, ""},
	{203076, "Nene", "0", "C"},
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]providers.TeamRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]providers.TeamRecord, 0, len(fixtureTeams))
	for _, t := range fixtureTeams {
		out = append(out, providers.TeamRecord{
			ID:           number(t.id),
			FullName:     providers.NewValue(t.name),
			Abbreviation: providers.NewValue(t.abbr),
			Nickname:     providers.NewValue(t.nick),
			City:         providers.NewValue(t.city),
			State:        providers.NewValue(t.state),
			YearFounded:  number(t.founded),
		})
	}
	return out, nil
}

// FetchRoster returns the same deterministic roster for every team.
func (p *Provider) FetchRoster(ctx context.Context, teamID int, season string) ([]providers.RosterRecord, error) {
	_ = season
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]providers.RosterRecord, 0, len(fixturePlayers))
	for _, pl := range fixturePlayers {
		out = append(out, providers.RosterRecord{
			TeamID:   number(teamID),
			PlayerID: number(pl.id),
			Player:   providers.NewValue(pl.name),
			Num:      providers.NewValue(pl.num),
			Position: providers.NewValue(pl.position),
		})
	}
	return out, nil
}

// FetchGameLog returns GameLogSize deterministic rows, most recent first.
// Every tenth game is a DNP with zeroed counting stats.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int, season string) ([]providers.GameLogRecord, error) {
	_ = playerID
	_ = season
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opponents := []string{"@ BOS", "vs. GSW", "@ MIA", "vs. BOS", "@ GSW", "vs. MIA"}
	out := make([]providers.GameLogRecord, 0, GameLogSize)
	for i := 0; i < GameLogSize; i++ {
		day := GameLogSize - i
		row := providers.GameLogRecord{
			GameID:   providers.NewValue(fmt.Sprintf("00225%05d", 100+day)),
			GameDate: providers.NewValue(fmt.Sprintf("GAME %02d", day)),
			Matchup:  providers.NewValue("LAL " + opponents[i%len(opponents)]),
			WL:       providers.NewValue(result(i)),
		}
		if i%10 == 9 {
			zero := number(0)
			row.MIN, row.PTS, row.REB, row.AST = zero, zero, zero, zero
			row.FGPct, row.FG3Pct, row.FTPct = zero, zero, zero
			out = append(out, row)
			continue
		}
		row.MIN = providers.NewValue(fmt.Sprintf("%d:%02d", 28+i%8, (i*7)%60))
		row.FGM, row.FGA, row.FGPct = number(8+i%5), number(18), decimal(float64(8+i%5)/18)
		row.FG3M, row.FG3A, row.FG3Pct = number(i%4), number(6), decimal(float64(i%4)/6)
		row.FTM, row.FTA, row.FTPct = number(4), number(5), decimal(0.8)
		row.OREB, row.DREB, row.REB = number(1+i%2), number(5+i%3), number(6+i%2+i%3)
		row.AST, row.STL, row.BLK = number(5+i%6), number(i%3), number(i%2)
		row.TOV, row.PF = number(2+i%3), number(1+i%4)
		row.PTS = number(20 + i%15)
		row.PlusMinus = number(i%11 - 5)
		out = append(out, row)
	}
	return out, nil
}

func result(i int) string {
	if i%3 == 0 {
		return "L"
	}
	return "W"
}

func number(n int) providers.Value {
	return providers.NewValue(json.Number(strconv.Itoa(n)))
}

func decimal(f float64) providers.Value {
	return providers.NewValue(json.Number(strconv.FormatFloat(f, 'f', 3, 64)))
}
