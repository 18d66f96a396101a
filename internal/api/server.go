// Package api exposes the configuration service over a small REST API.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"golang-netman/internal/pkg/logging"
	"golang-netman/internal/port"
)

// Server represents the API server.
type Server struct {
	service    port.ConfigurationService
	validate   *validator.Validate
	router     *chi.Mux
	httpServer *http.Server
	logger     *logrus.Entry
}

// NewServer creates an API server for the given configuration service.
func NewServer(listen string, service port.ConfigurationService) *Server {
	s := &Server{
		service:  service,
		validate: validator.New(),
		router:   chi.NewRouter(),
		logger:   logging.WithComponent("api"),
	}

	s.router.Use(Recovery(s.logger))
	s.router.Use(RequestLogger(s.logger))
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)
		r.Get("/state", s.handleGetState)
		r.Put("/hostname", s.handlePutHostname)
		r.Get("/status", s.handleGetStatus)
	})

	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// Start runs the server until Stop is called. It blocks.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("Starting API server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}
