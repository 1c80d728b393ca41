package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-player-stats-service/internal/app/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/app/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-player-stats-service/internal/http"
	"github.com/preston-bernstein/nba-player-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-player-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-player-stats-service/internal/poller"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers/fixture"
)

var metricsSetup = metrics.Setup

const defaultPlayerName = "LeBron James"

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	statsService  *stats.Service
	handler       *handlers.Handler
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// Poller keeps the current month warm in the background.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

// New constructs a server with the configured provider, cache and telemetry.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

// newServerWithMetrics uses an injected provider as given; only the
// configured provider gets the rate-limit and retry wrappers.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	playerID := resolvePlayer(cfg, logger, provider)
	svc := stats.NewService(buildStore(cfg, logger), fixture.New(), provider, stats.Options{
		PlayerID:       playerID,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
		Metrics:        recorder,
	})
	handler, httpSrv := buildHTTPServer(cfg, svc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		statsService:  svc,
		handler:       handler,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        poller.New(svc, logger, cfg.Cache.WarmInterval),
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, handler *handlers.Handler, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		handler:    handler,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func playerName(cfg config.Config) string {
	if cfg.Player.Name != "" {
		return cfg.Player.Name
	}
	return defaultPlayerName
}

// resolvePlayer runs the directory lookup once at startup.
func resolvePlayer(cfg config.Config, logger *slog.Logger, directory providers.PlayerDirectory) int {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	id := players.NewResolver(directory, logger).Resolve(ctx, playerName(cfg), cfg.Player.ID)
	logging.Info(logger, "player configured",
		slog.String("name", playerName(cfg)),
		slog.Int(logging.FieldPlayerID, id),
	)
	return id
}

func buildHTTPServer(cfg config.Config, svc *stats.Service, logger *slog.Logger, recorder *metrics.Recorder) (*handlers.Handler, httpServer) {
	handler := handlers.NewHandler(svc, playerName(cfg), logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.CORS(cfg.CORSOrigins, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.RequestTimeout),
		IdleTimeout:  idleTimeout,
	}

	return handler, netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
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
	if s.handler != nil {
		s.handler.MarkShuttingDown()
	}

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

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop poller", "error", err)
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
			logger.Warn("metrics setup failed, continuing without telemetry", logging.FieldError, err)
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
