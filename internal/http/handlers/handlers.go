package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/logging"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
)

const healthMessage = "NBA stats gateway is running"

// TeamsService lists franchises.
type TeamsService interface {
	Teams(ctx context.Context) ([]teams.Team, error)
}

// RosterService lists a team's players.
type RosterService interface {
	Roster(ctx context.Context, teamID int) ([]players.RosterEntry, error)
}

// GameLogService lists a player's recent stat lines.
type GameLogService interface {
	GameLog(ctx context.Context, playerID int) ([]stats.GameStat, error)
}

// Handler wires HTTP routes to the fetch-and-transform services.
type Handler struct {
	teams    TeamsService
	roster   RosterService
	gameLog  GameLogService
	season   string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewHandler constructs a Handler. recorder may be nil.
func NewHandler(teamsSvc TeamsService, rosterSvc RosterService, gameLogSvc GameLogService, season string, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		teams:    teamsSvc,
		roster:   rosterSvc,
		gameLog:  gameLogSvc,
		season:   season,
		logger:   logger,
		recorder: recorder,
	}
}

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Season  string `json:"season"`
}

// Health reports liveness and the configured season.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, HealthResponse{
		Status:  "OK",
		Message: healthMessage,
		Season:  h.season,
	}, h.logger)
}

// Teams returns every franchise.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	items, err := h.teams.Teams(r.Context())
	if err != nil {
		h.pipelineError(w, r, RouteTeams, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served teams", slog.Int(logging.FieldCount, len(items)))
	writeJSON(w, nethttp.StatusOK, teams.NewListResponse(items), h.logger)
}

// Players returns the roster of the team in the path.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := pathID(r, "teamId")
	if !ok {
		h.NotFound(w, r)
		return
	}
	items, err := h.roster.Roster(r.Context(), teamID)
	if err != nil {
		h.pipelineError(w, r, RoutePlayers, err, slog.Int(logging.FieldTeamID, teamID))
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served roster",
		slog.Int(logging.FieldTeamID, teamID),
		slog.Int(logging.FieldCount, len(items)),
	)
	writeJSON(w, nethttp.StatusOK, players.NewListResponse(items), h.logger)
}

// Stats returns the recent game log of the player in the path.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	playerID, ok := pathID(r, "playerId")
	if !ok {
		h.NotFound(w, r)
		return
	}
	items, err := h.gameLog.GameLog(r.Context(), playerID)
	if err != nil {
		h.pipelineError(w, r, RouteStats, err, slog.Int(logging.FieldPlayerID, playerID))
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served game log",
		slog.Int(logging.FieldPlayerID, playerID),
		slog.Int(logging.FieldCount, len(items)),
	)
	writeJSON(w, nethttp.StatusOK, stats.NewListResponse(items), h.logger)
}

// NotFound answers unknown routes and ids that are not integers.
func (h *Handler) NotFound(w nethttp.ResponseWriter, _ *nethttp.Request) {
	writeError(w, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, _ *nethttp.Request) {
	writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func pathID(r *nethttp.Request, key string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
