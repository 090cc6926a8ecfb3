package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-gateway/internal/apperr"
	"github.com/preston-bernstein/nba-stats-gateway/internal/logging"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, ErrorResponse{Error: message}, logger)
}

// pipelineError logs a failed fetch-and-transform call with its kind and
// answers 500. The client sees only the message.
func (h *Handler) pipelineError(w http.ResponseWriter, r *http.Request, route string, err error, attrs ...any) {
	kind := apperr.KindOf(err)
	logger := loggerFromContext(r, h.logger)
	args := append([]any{slog.String(logging.FieldErrorKind, string(kind))}, attrs...)
	logging.Error(logger, "request failed", err, args...)
	h.recorder.RecordPipelineError(route, string(kind))
	writeError(w, http.StatusInternalServerError, err.Error(), logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
