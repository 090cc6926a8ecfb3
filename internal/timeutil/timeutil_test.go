package timeutil

import (
	"testing"
	"time"
)

func TestParseSeason(t *testing.T) {
	season, err := ParseSeason("2025-26")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if season.StartYear != 2025 {
		t.Fatalf("expected start year 2025, got %d", season.StartYear)
	}
	if got := season.String(); got != "2025-26" {
		t.Fatalf("expected season to round-trip, got %s", got)
	}
}

func TestParseSeasonCenturyRollover(t *testing.T) {
	season, err := ParseSeason("1999-00")
	if err != nil {
		t.Fatalf("expected 1999-00 to parse, got %v", err)
	}
	if got := season.String(); got != "1999-00" {
		t.Fatalf("expected 1999-00, got %s", got)
	}
}

func TestParseSeasonRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "2025", "2025-2026", "2025-27", "abcd-ef", "2025-26 "} {
		if _, err := ParseSeason(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestSeasonAt(t *testing.T) {
	cases := map[time.Time]string{
		time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC):   "2025-26",
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC):      "2025-26",
		time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC): "2025-26",
	}
	for at, want := range cases {
		if got := SeasonAt(at).String(); got != want {
			t.Fatalf("at %s expected %s, got %s", at.Format(time.DateOnly), want, got)
		}
	}
}
