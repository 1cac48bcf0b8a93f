// Package main provides the entry point for the simulation API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/star-totals/internal/config"
	"github.com/yourusername/star-totals/internal/logger"
	"github.com/yourusername/star-totals/internal/metrics"
	"github.com/yourusername/star-totals/internal/server"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the over/under simulation API",
	Long:  `Serves the scoring engine over HTTP: POST /api/v1/simulate, GET /healthz, GET /metrics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.ForEnvironment(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.InitRegistry()

	appLogger.WithFields(logrus.Fields{
		"version": Version,
		"commit":  GitCommit,
		"env":     cfg.App.Environment,
	}).Info("Starting star-totals server")

	srv := server.NewServer(cfg, appLogger)
	return srv.Start(ctx)
}
