package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Season identifies an NBA season by the calendar year it starts in.
type Season struct {
	StartYear int
}

// String formats the season the way stats.nba.com expects it, e.g. "2025-26".
func (s Season) String() string {
	return fmt.Sprintf("%d-%02d", s.StartYear, (s.StartYear+1)%100)
}

// ParseSeason parses a "YYYY-YY" season string whose years are consecutive.
func ParseSeason(value string) (Season, error) {
	m := seasonPattern.FindStringSubmatch(value)
	if m == nil {
		return Season{}, fmt.Errorf("season %q: expected YYYY-YY", value)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return Season{}, fmt.Errorf("season %q: years are not consecutive", value)
	}
	return Season{StartYear: start}, nil
}

// SeasonAt returns the season in progress at t. Seasons roll over in October.
func SeasonAt(t time.Time) Season {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return Season{StartYear: year}
}
