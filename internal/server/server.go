// Package server exposes the simulation engine over HTTP for the form/UI
// collaborators. The engine itself stays free of any network concern.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/star-totals/internal/config"
	"github.com/yourusername/star-totals/internal/metrics"
	"github.com/yourusername/star-totals/internal/staking"
)

// Server serves the simulation API
type Server struct {
	cfg     config.ServerConfig
	simCfg  config.SimulationConfig
	sizer   *staking.Sizer
	logger  *logrus.Logger
	limiter *rate.Limiter
	server  *http.Server
}

// NewServer creates a server from the application configuration
func NewServer(cfg *config.Config, logger *logrus.Logger) *Server {
	return &Server{
		cfg:     cfg.Server,
		simCfg:  cfg.Simulation,
		sizer:   staking.NewSizer(cfg.Staking.KellyFraction, cfg.Staking.MaxStakeFraction),
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.Server.RequestsPerSec), cfg.Server.RequestBurst),
	}
}

// Start runs the HTTP server until the context is cancelled, then shuts down
// gracefully within the configured window.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/simulate", s.handleSimulate)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", metrics.Handler())

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.cfg.Port).Info("Simulation server starting")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Simulation server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownSeconds)*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
