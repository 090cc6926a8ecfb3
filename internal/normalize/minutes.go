package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// Minutes converts a MIN cell to decimal minutes rounded to one place.
// "32:30" is a clock string (32.5), "15" or 15 a plain decimal, and a
// missing or falsy value 0.
func Minutes(v providers.Value) (float64, error) {
	if !v.Truthy() {
		return 0, nil
	}
	raw, _ := v.Text()

	var minutes float64
	if mm, rest, ok := strings.Cut(raw, ":"); ok {
		ss, _, _ := strings.Cut(rest, ":")
		m, err := parseDecimal(mm)
		if err != nil {
			return 0, err
		}
		s, err := parseDecimal(ss)
		if err != nil {
			return 0, err
		}
		minutes = m + s/60
	} else {
		m, err := parseDecimal(raw)
		if err != nil {
			return 0, err
		}
		minutes = m
	}
	return roundTenth(minutes), nil
}

func parseDecimal(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q", raw)
	}
	return f, nil
}

// roundTenth rounds the exact binary value to one decimal, ties to even.
// 10.25 becomes 10.2 and 32.05 (stored just below) becomes 32.0.
func roundTenth(f float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 1, 64), 64)
	return v
}
