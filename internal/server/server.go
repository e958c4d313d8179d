// Package server exposes the comparison engine over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/reputation"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	Address string
	Logger  *zap.Logger
	Store   reputation.Store
	Version string
}

// Server represents the HTTP server.
type Server struct {
	router   *chi.Mux
	server   *http.Server
	logger   *zap.Logger
	store    reputation.Store
	sessions *sessionStore
	version  string
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := cfg.Store
	if store == nil {
		store = reputation.NewMemoryStore()
	}

	address := cfg.Address
	if address == "" {
		address = constants.DefaultServerAddress
	}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = "dev"
	}

	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		store:    store,
		sessions: newSessionStore(),
		version:  version,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         address,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/version", s.handleVersion)
		r.Post("/compare", s.handleCompare)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleSessionCreate)
			r.Get("/{id}", s.handleSessionGet)
			r.Get("/{id}/export", s.handleSessionExport)
		})

		r.Route("/reputations", func(r chi.Router) {
			r.Put("/", s.handleReputationPut)
			r.Get("/", s.handleReputationGet)
		})
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request completed",
			zap.String("op", "server.loggingMiddleware"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("requestId", middleware.GetReqID(r.Context())),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Handler returns the underlying router. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server",
		zap.String("op", "server.Start"),
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server", zap.String("op", "server.Shutdown"))
	return s.server.Shutdown(ctx)
}
