package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-stats-gateway/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-gateway/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-gateway/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
)

// RouterOptions configures cross-cutting behaviour of the router.
type RouterOptions struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers the API routes once and returns the root handler.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get(handlers.RouteHealth, h.Health)
	r.Get(handlers.RouteTeams, h.Teams)
	r.Get(handlers.RoutePlayers, h.Players)
	r.Get(handlers.RouteStats, h.Stats)

	return r
}
