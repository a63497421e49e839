// Package server provides the HTTP REST API for the match scoring engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/batch"
	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/matching"
)

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *matching.Engine
	scorer     *batch.Scorer
	db         *db.DB
	logger     *zap.Logger
}

// New creates a server around an already-constructed engine. The database is
// optional: without it the stored-matches endpoints respond 503 and scoring
// runs without persistence.
func New(cfg Config, engine *matching.Engine, database *db.DB, logger *zap.Logger) *Server {
	s := &Server{
		engine: engine,
		scorer: batch.NewScorer(engine, batch.WithLogger(logger)),
		db:     database,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/match", s.handleMatch)
	mux.HandleFunc("POST /v1/match/batch", s.handleMatchBatch)
	mux.HandleFunc("GET /v1/jobs/{job_id}/matches", s.handleJobMatches)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if s.db != nil {
		s.db.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// jsonResponse writes a JSON response with the given status code
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleHealth reports liveness and, when configured, database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	s.jsonResponse(w, http.StatusOK, status)
}
