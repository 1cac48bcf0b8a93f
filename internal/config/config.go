// Package config provides configuration management for the star-totals service.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Staking    StakingConfig    `mapstructure:"staking" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SimulationConfig represents the scoring model parameters
type SimulationConfig struct {
	ScoreStdDev        float64 `mapstructure:"score_std_dev" validate:"required,gt=0"`
	NegBinomDispersion float64 `mapstructure:"neg_binom_dispersion" validate:"required,gt=0"`
	SampleCount        int     `mapstructure:"sample_count" validate:"required,gt=0"`
	Seed               int64   `mapstructure:"seed"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Port            int     `mapstructure:"port" validate:"required,min=1,max=65535"`
	RequestsPerSec  float64 `mapstructure:"requests_per_sec" validate:"required,gt=0"`
	RequestBurst    int     `mapstructure:"request_burst" validate:"required,gt=0"`
	ShutdownSeconds int     `mapstructure:"shutdown_seconds" validate:"required,gt=0"`
}

// StakingConfig represents stake sizing configuration
type StakingConfig struct {
	KellyFraction    float64 `mapstructure:"kelly_fraction" validate:"required,gt=0,lte=1"`
	MaxStakeFraction float64 `mapstructure:"max_stake_fraction" validate:"required,gt=0,lte=1"`
}
