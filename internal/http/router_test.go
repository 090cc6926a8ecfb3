package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-gateway/internal/apperr"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
	"github.com/preston-bernstein/nba-stats-gateway/internal/teststubs"
	"github.com/preston-bernstein/nba-stats-gateway/internal/testutil"
)

type routerFixture struct {
	teams   *teststubs.StubTeamsService
	roster  *teststubs.StubRosterService
	gameLog *teststubs.StubGameLogService
	router  http.Handler
}

func newRouterFixture(t *testing.T, origins []string) *routerFixture {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	f := &routerFixture{
		teams:   &teststubs.StubTeamsService{Items: []teams.Team{testutil.SampleTeam(1610612747)}},
		roster:  &teststubs.StubRosterService{Items: []players.RosterEntry{testutil.SampleRosterEntry(2544)}},
		gameLog: &teststubs.StubGameLogService{Items: []stats.GameStat{testutil.SampleGameStat(30)}},
	}
	h := handlers.NewHandler(f.teams, f.roster, f.gameLog, "2025-26", logger, nil)
	f.router = NewRouter(h, RouterOptions{Logger: logger, Recorder: metrics.NewRecorder(), AllowedOrigins: origins})
	return f
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	f := newRouterFixture(t, nil)

	cases := map[string]int{
		"/api/health":             http.StatusOK,
		"/api/teams":              http.StatusOK,
		"/api/players/1610612747": http.StatusOK,
		"/api/stats/2544":         http.StatusOK,
		"/api/players/abc":        http.StatusNotFound,
		"/api/stats/12.5":         http.StatusNotFound,
		"/api/stats/":             http.StatusNotFound,
		"/api/unknown":            http.StatusNotFound,
		"/":                       http.StatusNotFound,
	}

	for path, want := range cases {
		rr := testutil.Serve(f.router, http.MethodGet, path, nil)
		if rr.Code != want {
			t.Fatalf("path %s expected %d, got %d", path, want, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("path %s expected request id header", path)
		}
	}
	if f.roster.TeamID != 1610612747 || f.gameLog.PlayerID != 2544 {
		t.Fatalf("expected path ids passed to services, got team=%d player=%d", f.roster.TeamID, f.gameLog.PlayerID)
	}
}

func TestRouterNotFoundBody(t *testing.T) {
	f := newRouterFixture(t, nil)

	rr := testutil.Serve(f.router, http.MethodGet, "/api/players/abc", nil)
	if body := strings.TrimSpace(rr.Body.String()); body != `{"error":"not found"}` {
		t.Fatalf("unexpected not found body %s", body)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	f := newRouterFixture(t, nil)

	rr := testutil.Serve(f.router, http.MethodPost, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterUpstreamFailure(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.teams.Err = apperr.Upstream(errors.New("stats.nba.com unreachable"))

	rr := testutil.Serve(f.router, http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if body := strings.TrimSpace(rr.Body.String()); body != `{"error":"stats.nba.com unreachable"}` {
		t.Fatalf("unexpected error body %s", body)
	}
}

func TestRouterAllowsCrossOriginRequests(t *testing.T) {
	f := newRouterFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := testutil.ServeRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

func TestRouterPreflight(t *testing.T) {
	f := newRouterFixture(t, []string{"https://propstats.example"})

	req := httptest.NewRequest(http.MethodOptions, "/api/stats/2544", nil)
	req.Header.Set("Origin", "https://propstats.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.ServeRequest(f.router, req)

	if rr.Code >= 300 {
		t.Fatalf("expected successful preflight, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://propstats.example" {
		t.Fatalf("expected configured origin, got %q", got)
	}
	if f.gameLog.PlayerID != 0 {
		t.Fatalf("expected preflight not to reach the handler")
	}

	other := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	other.Header.Set("Origin", "https://evil.example")
	rr = testutil.ServeRequest(f.router, other)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestRouterRecoversFromPanics(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(nil, nil, nil, "2025-26", logger, nil)
	router := NewRouter(h, RouterOptions{Logger: logger})

	rr := testutil.Serve(router, http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}
