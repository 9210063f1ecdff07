package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nexus-data-service/internal/auth"
	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/backend/mock"
	"github.com/preston-bernstein/nexus-data-service/internal/config"
	httpserver "github.com/preston-bernstein/nexus-data-service/internal/http"
	"github.com/preston-bernstein/nexus-data-service/internal/http/handlers"
	"github.com/preston-bernstein/nexus-data-service/internal/http/middleware"
	"github.com/preston-bernstein/nexus-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
	"github.com/preston-bernstein/nexus-data-service/internal/store"
)

var (
	metricsSetup = metrics.Setup

	errDraining = errors.New("shutting down")
)

// Server is the reference REST server: the router over an instrumented mock
// backend seeded with fixture data.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	backend       backend.Backend
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	draining      atomic.Bool
}

// New constructs a server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	proxies, err := requestutil.NewProxyResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	authn, err := auth.NewAuthenticator(auth.Config{
		Password: cfg.Auth.AdminPassword,
		Secret:   cfg.Auth.TokenSecret,
		TTL:      cfg.Auth.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if cfg.Auth.TokenSecret == "" {
		logger.Warn("TOKEN_SECRET not set, issued tokens will not survive a restart")
	}

	memoryStore := store.NewSeededStore()
	svc := backend.Instrument(mock.New(memoryStore, authn, mock.Config{Delay: cfg.Server.Delay}), logger, recorder)

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		backend:       svc,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	s.httpServer = buildHTTPServer(cfg, svc, authn, proxies, logger, recorder, s.ready)
	return s, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc backend.Backend, verifier handlers.TokenVerifier, proxies *requestutil.ProxyResolver, logger *slog.Logger, recorder *metrics.Recorder, ready func() error) httpServer {
	handler := handlers.NewHandler(handlers.Config{
		Backend:  svc,
		Verifier: verifier,
		Limiter:  middleware.NewKeyedLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst),
		Proxies:  proxies,
		Recorder: recorder,
		Logger:   logger,
		Ready:    ready,
	})
	router := httpserver.NewRouter(handler)
	wrapped := middleware.CORS(cfg.Server.CORSOrigins, middleware.LoggingMiddleware(logger, recorder, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout(cfg.Server.Delay),
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run serves until ctx is cancelled or the HTTP server fails, then shuts
// everything down. It returns the listener error, if any.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if s.metricsServer != nil {
		g.Go(func() error {
			// Telemetry failures never take the API down.
			_ = serve("metrics", s.metricsServer, s.logger)
			return nil
		})
	}
	g.Go(func() error {
		return serve("http", s.httpServer, s.logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logging.Info(s.logger, "shutdown signal received")
		}
		s.gracefulShutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) ready() error {
	if s.draining.Load() {
		return errDraining
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	s.draining.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func serve(name string, srv httpServer, logger *slog.Logger) error {
	logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Warn(logger, name+" server failed", logging.FieldError, err)
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
