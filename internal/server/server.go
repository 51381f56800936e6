package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/config"
	"gorm.io/gorm"
)

// Server owns the HTTP listener of the API.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// New builds the server for cfg on top of an open database handle.
func New(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *Server {
	router := NewRouter(NewServices(cfg, db, log), log)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      WithCORS(cfg.CORS, router),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		log: log,
	}
}

// WithCORS wraps next with the configured CORS policy.
func WithCORS(cfg config.CORSConfig, next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         cfg.MaxAge,
	})(next)
}

// Handler returns the root handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run blocks serving requests until Shutdown is called.
func (s *Server) Run() error {
	s.log.Info().Str("address", s.httpServer.Addr).Msg("server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
