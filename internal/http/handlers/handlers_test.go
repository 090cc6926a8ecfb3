package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-stats-gateway/internal/apperr"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
	"github.com/preston-bernstein/nba-stats-gateway/internal/teststubs"
	"github.com/preston-bernstein/nba-stats-gateway/internal/testutil"
)

type fixture struct {
	teams    *teststubs.StubTeamsService
	roster   *teststubs.StubRosterService
	gameLog  *teststubs.StubGameLogService
	recorder *metrics.Recorder
	handler  *Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	f := &fixture{
		teams:    &teststubs.StubTeamsService{},
		roster:   &teststubs.StubRosterService{},
		gameLog:  &teststubs.StubGameLogService{},
		recorder: metrics.NewRecorder(),
	}
	f.handler = NewHandler(f.teams, f.roster, f.gameLog, "2025-26", logger, f.recorder)
	return f
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rr := testutil.Serve(http.HandlerFunc(f.handler.Health), http.MethodGet, "/api/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp HealthResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Status != "OK" || resp.Season != "2025-26" || resp.Message == "" {
		t.Fatalf("unexpected health payload %+v", resp)
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp ErrorResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Error != "shutting down" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
}

func TestTeamsReturnsListEnvelope(t *testing.T) {
	f := newFixture(t)
	f.teams.Items = []teams.Team{testutil.SampleTeam(1610612747), testutil.SampleTeam(1610612738)}

	rr := testutil.Serve(http.HandlerFunc(f.handler.Teams), http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp teams.ListResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Results != 2 || len(resp.Response) != 2 || resp.Response[0].ID != 1610612747 {
		t.Fatalf("unexpected teams payload %+v", resp)
	}
}

func TestTeamsEmptyListIsArray(t *testing.T) {
	f := newFixture(t)

	rr := testutil.Serve(http.HandlerFunc(f.handler.Teams), http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := strings.TrimSpace(rr.Body.String()); body != `{"response":[],"results":0}` {
		t.Fatalf("expected empty array envelope, got %s", body)
	}
}

func TestTeamsUpstreamFailureReturnsExactErrorBody(t *testing.T) {
	f := newFixture(t)
	f.teams.Err = apperr.Upstream(errors.New("connection refused"))

	rr := testutil.Serve(http.HandlerFunc(f.handler.Teams), http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	if body := strings.TrimSpace(rr.Body.String()); body != `{"error":"connection refused"}` {
		t.Fatalf("expected only the error field, got %s", body)
	}
	if f.recorder.PipelineErrors(string(apperr.UpstreamUnavailable)) != 1 {
		t.Fatalf("expected upstream pipeline error to be counted")
	}
}

func TestPlayersPassesTeamID(t *testing.T) {
	f := newFixture(t)
	f.roster.Items = []players.RosterEntry{testutil.SampleRosterEntry(2544)}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/players/1610612747", nil), "teamId", "1610612747")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Players), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if f.roster.TeamID != 1610612747 {
		t.Fatalf("expected team id passed through, got %d", f.roster.TeamID)
	}
	var resp players.ListResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Results != 1 || resp.Response[0].FirstName != "LeBron" {
		t.Fatalf("unexpected roster payload %+v", resp)
	}
}

func TestPlayersMalformedRecordReturns500(t *testing.T) {
	f := newFixture(t)
	f.roster.Err = apperr.Malformed(errors.New("roster row 0: malformed record: PLAYER_ID"))

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/players/1", nil), "teamId", "1")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Players), req)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if _, ok := resp["response"]; ok || len(resp) != 1 {
		t.Fatalf("expected only an error field, got %+v", resp)
	}
	if f.recorder.PipelineErrors(string(apperr.MalformedRecord)) != 1 {
		t.Fatalf("expected malformed pipeline error to be counted")
	}
}

func TestPathIDMustBeInteger(t *testing.T) {
	f := newFixture(t)

	for _, raw := range []string{"abc", "", "-5", "99999999999999999999"} {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/stats/x", nil), "playerId", raw)
		rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Stats), req)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	}
	if f.gameLog.PlayerID != 0 {
		t.Fatalf("expected service not to be called")
	}
}

func TestStatsReturnsGameLog(t *testing.T) {
	f := newFixture(t)
	f.gameLog.Items = []stats.GameStat{testutil.SampleGameStat(27), testutil.SampleGameStat(0)}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/stats/2544", nil), "playerId", "2544")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Stats), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if f.gameLog.PlayerID != 2544 {
		t.Fatalf("expected player id passed through, got %d", f.gameLog.PlayerID)
	}
	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["results"].(float64) != 2 {
		t.Fatalf("unexpected results %v", resp["results"])
	}
	first := resp["response"].([]any)[0].(map[string]any)
	for _, key := range []string{"points", "totReb", "fgPct", "minutesPlayed", "game", "team"} {
		if _, ok := first[key]; !ok {
			t.Fatalf("expected %s in stat payload, got %+v", key, first)
		}
	}
}

func TestStatsUpstreamFailure(t *testing.T) {
	f := newFixture(t)
	f.gameLog.Err = errors.New("timeout")

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/stats/1", nil), "playerId", "1")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Stats), req)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var resp ErrorResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Error != "timeout" {
		t.Fatalf("unexpected error message %q", resp.Error)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	rr := testutil.Serve(http.HandlerFunc(f.handler.NotFound), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(http.HandlerFunc(f.handler.MethodNotAllowed), http.MethodPost, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
