// Package main provides the entry point for the one-shot simulation CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/star-totals/internal/config"
	"github.com/yourusername/star-totals/internal/logger"
	"github.com/yourusername/star-totals/internal/models"
	"github.com/yourusername/star-totals/internal/render"
	"github.com/yourusername/star-totals/internal/simulation"
	"github.com/yourusername/star-totals/internal/staking"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to config file (optional, defaults apply)")
		homeAvg    = flag.Float64("home-avg", 110.0, "Home team mean points scored per game")
		homeAllow  = flag.Float64("home-allow", 108.0, "Home team mean points allowed per game")
		homeOver   = flag.Float64("home-over", 0.55, "Home team over rate as a fraction in [0,1]")
		awayAvg    = flag.Float64("away-avg", 112.0, "Away team mean points scored per game")
		awayAllow  = flag.Float64("away-allow", 111.0, "Away team mean points allowed per game")
		awayOver   = flag.Float64("away-over", 0.50, "Away team over rate as a fraction in [0,1]")
		target     = flag.Float64("target", 225.5, "Posted total (the line)")
		samples    = flag.Int("samples", 0, "Override sample count per model")
		seed       = flag.Int64("seed", 0, "Random seed (0 = clock)")
		odds       = flag.String("odds", "", "Decimal odds for the over/under market (optional)")
		bankroll   = flag.String("bankroll", "", "Bankroll for stake sizing (optional)")
	)
	flag.Parse()

	log := newLogger()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	simCfg, err := simulation.FromConfig(&cfg.Simulation)
	if err != nil {
		log.Fatalf("Invalid simulation config: %v", err)
	}
	if *samples > 0 {
		simCfg.SampleCount = *samples
	}
	if *seed != 0 {
		simCfg.Seed = *seed
	}

	sim, err := simulation.NewSimulator(simCfg)
	if err != nil {
		log.Fatalf("Failed to build simulator: %v", err)
	}

	home := models.TeamStats{Avg: *homeAvg, Allow: *homeAllow, OverRate: *homeOver}
	away := models.TeamStats{Avg: *awayAvg, Allow: *awayAllow, OverRate: *awayOver}

	result, err := sim.Simulate(home, away, *target)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Print(render.FormatResult(result, *target))

	if *odds != "" && *bankroll != "" {
		printStake(log, cfg, result, *odds, *bankroll)
	}
}

func printStake(log *logrus.Logger, cfg *config.Config, result *models.SimulationResult, oddsStr, bankrollStr string) {
	odds, err := decimal.NewFromString(oddsStr)
	if err != nil {
		log.Fatalf("Invalid odds %q: %v", oddsStr, err)
	}
	bankroll, err := decimal.NewFromString(bankrollStr)
	if err != nil {
		log.Fatalf("Invalid bankroll %q: %v", bankrollStr, err)
	}

	sizer := staking.NewSizer(cfg.Staking.KellyFraction, cfg.Staking.MaxStakeFraction)
	stake, err := sizer.SuggestStake(result.FusedProbability, odds, bankroll)
	if err != nil {
		log.Fatalf("Stake sizing failed: %v", err)
	}
	if stake.IsZero() {
		fmt.Println("Suggested stake:     no bet (no positive edge at these odds)")
		return
	}
	fmt.Printf("Suggested stake:     %s\n", stake.StringFixed(2))
}

func newLogger() *logrus.Logger {
	// The CLI logs before the config is parsed, so start at info.
	log := logger.NewLogger("info")
	log.SetOutput(os.Stderr)
	return log
}
