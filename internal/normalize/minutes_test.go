package normalize

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

func TestMinutes(t *testing.T) {
	cases := []struct {
		name string
		raw  providers.Value
		want float64
	}{
		{"clock", str("32:30"), 32.5},
		{"clock rounds", str("10:20"), 10.3},
		{"clock with extra part", str("12:06:00"), 12.1},
		{"plain string", str("15"), 15.0},
		{"plain decimal string", str("15.25"), 15.2},
		{"quarter minute ties to even", str("10:15"), 10.2},
		{"quarter minute ties to even upward", str("10:45"), 10.8},
		{"three quarter", str("33:15"), 33.2},
		{"inexact tie rounds down", str("32:03"), 32.0},
		{"stored below half", str("0.35"), 0.3},
		{"stored above half", str("0.45"), 0.5},
		{"number", num("15"), 15.0},
		{"float", providers.NewValue(36.04), 36.0},
		{"absent", providers.Absent(), 0},
		{"null", null(), 0},
		{"empty", str(""), 0},
		{"zero", num("0"), 0},
	}
	for _, tc := range cases {
		got, err := Minutes(tc.raw)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestMinutesRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"DNP", "12:xx", "xx:12"} {
		if _, err := Minutes(str(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
