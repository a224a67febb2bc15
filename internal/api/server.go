// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package api is flywatch's HTTP surface: event ingest for the detection
// engine, the localized notifications page, clear-all, a websocket stream
// of page updates, health and Prometheus metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/logging"
	"grimm.is/flywatch/internal/metrics"
	"grimm.is/flywatch/internal/notification"
)

// ServerConfig holds HTTP server limits.
type ServerConfig struct {
	ReadHeaderTimeout time.Duration // Slowloris prevention
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodyBytes      int64
	// IngestRate is the sustained events/s accepted on POST; zero disables
	// the limit.
	IngestRate  rate.Limit
	IngestBurst int
}

// DefaultServerConfig returns the production limits.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
		MaxBodyBytes:      64 << 10,
		IngestRate:        200,
		IngestBurst:       50,
	}
}

// ServerOptions holds dependencies for the API server
type ServerOptions struct {
	Log      *notification.Log
	Store    *config.Store
	Metrics  *metrics.Metrics     // optional
	Registry *prometheus.Registry // optional; /metrics is not served without it
	Locator  Locator              // optional
	Logger   *logging.Logger
	Config   *ServerConfig // optional; DefaultServerConfig when nil
}

// Server handles API requests.
type Server struct {
	log      *notification.Log
	store    *config.Store
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	locator  Locator
	logger   *logging.Logger
	cfg      ServerConfig
	limiter  *rate.Limiter
	hub      *Hub
	cancel   func()

	startTime time.Time
	router    *mux.Router
}

// NewServer creates a new API server with the provided options
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Log == nil {
		return nil, errors.New(errors.KindValidation, "api: notification log is required")
	}
	if opts.Store == nil {
		return nil, errors.New(errors.KindValidation, "api: settings store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.WithComponent("api")
	}
	cfg := DefaultServerConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	s := &Server{
		log:       opts.Log,
		store:     opts.Store,
		metrics:   opts.Metrics,
		registry:  opts.Registry,
		locator:   opts.Locator,
		logger:    logger,
		cfg:       cfg,
		startTime: time.Now(),
		router:    mux.NewRouter(),
	}
	if cfg.IngestRate > 0 {
		s.limiter = rate.NewLimiter(cfg.IngestRate, cfg.IngestBurst)
	}

	changes, cancel := s.log.Subscribe()
	s.cancel = cancel
	s.hub = NewHub(changes, s.renderPage, logger.WithComponent("websocket"))

	s.initRoutes()
	return s, nil
}

func (s *Server) initRoutes() {
	(&NotificationHandlers{server: s}).RegisterRoutes(s.router)
	(&SettingsHandlers{store: s.store}).RegisterRoutes(s.router)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if s.registry != nil {
		s.router.Handle("/metrics", metrics.Handler(s.registry)).Methods(http.MethodGet)
	}
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Handler returns the HTTP handler with middleware applied.
// Chain: AccessLog -> i18n -> router
func (s *Server) Handler() http.Handler {
	return AccessLogger(s.logger, i18n.Middleware(s.router))
}

// Hub exposes the websocket hub; Run it before serving.
func (s *Server) Hub() *Hub { return s.hub }

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		MaxHeaderBytes:    s.cfg.MaxHeaderBytes,
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrapf(err, errors.KindUnavailable, "api listen on %s", addr)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.KindInternal, "api shutdown")
	}
	s.logger.Info("API server stopped")
	return nil
}

type healthResponse struct {
	Status    string `json:"status"`
	Retained  int    `json:"retained"`
	Unread    int    `json:"unread"`
	Clients   int    `json:"clients"`
	UptimeSec int64  `json:"uptime_seconds"`
}

// handleHealth reports liveness and log occupancy.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.log.Snapshot()
	WriteJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Retained:  snap.Len(),
		Unread:    snap.Unread(),
		Clients:   s.hub.ClientCount(),
		UptimeSec: int64(time.Since(s.startTime).Seconds()),
	})
}
