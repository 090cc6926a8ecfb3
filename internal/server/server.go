package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-stats-gateway/internal/app/players"
	"github.com/preston-bernstein/nba-stats-gateway/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-gateway/internal/app/teams"
	"github.com/preston-bernstein/nba-stats-gateway/internal/config"
	httpserver "github.com/preston-bernstein/nba-stats-gateway/internal/http"
	"github.com/preston-bernstein/nba-stats-gateway/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-gateway/internal/logging"
	"github.com/preston-bernstein/nba-stats-gateway/internal/metrics"
	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
	"github.com/preston-bernstein/nba-stats-gateway/internal/timeutil"
)

var (
	metricsSetup = metrics.Setup
	now          = time.Now
)

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	teamsService   *teams.Service
	playersService *players.Service
	statsService   *stats.Service
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New constructs a server with the configured provider and its wrappers.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider, normalizeProviderName(cfg.Provider, provider))
	}
	warnOnStaleSeason(cfg.Season, logger)

	teamSvc, playerSvc, statsSvc := buildServices(provider, cfg.Season)
	httpSrv := buildHTTPServer(cfg, teamSvc, playerSvc, statsSvc, logger, recorder)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		teamsService:   teamSvc,
		playersService: playerSvc,
		statsService:   statsSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(provider providers.DataProvider, season string) (*teams.Service, *players.Service, *stats.Service) {
	return teams.NewService(provider), players.NewService(provider, season), stats.NewService(provider, season)
}

func buildHTTPServer(cfg config.Config, teamSvc *teams.Service, playerSvc *players.Service, statsSvc *stats.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(teamSvc, playerSvc, statsSvc, cfg.Season, logger, recorder)
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Logger:         logger,
		Recorder:       recorder,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.NBAStats.Timeout, cfg.NBAStats.MinInterval),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// warnOnStaleSeason flags a configured season that is not the one in progress.
// The season is fixed at startup, so a stale value silently serves old data.
func warnOnStaleSeason(season string, logger *slog.Logger) {
	current := timeutil.SeasonAt(now()).String()
	if season != "" && season != current {
		logging.Warn(logger, "configured season is not the current season",
			slog.String(logging.FieldSeason, season),
			slog.String("current_season", current),
		)
	}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting",
			slog.String("addr", s.httpServer.Addr()),
			slog.String(logging.FieldSeason, s.cfg.Season),
			slog.String(logging.FieldProvider, s.cfg.Provider),
		)
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
