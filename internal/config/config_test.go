package config

import (
	"testing"
)

const (
	validConfigPath     = "testdata/valid_config.yaml"
	expansionConfigPath = "testdata/expansion_config.yaml"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.App.Name != "star-totals" {
		t.Errorf("expected app name 'star-totals', got %q", cfg.App.Name)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.App.LogLevel)
	}
	if cfg.Simulation.ScoreStdDev != 12.5 {
		t.Errorf("expected score std dev 12.5, got %v", cfg.Simulation.ScoreStdDev)
	}
	if cfg.Simulation.SampleCount != 2000 {
		t.Errorf("expected sample count 2000, got %d", cfg.Simulation.SampleCount)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
}

// TestLoadConfigFileNotFound tests handling of a missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	if _, err := Load("testdata/nonexistent.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvExpansion tests ${VAR} expansion in the YAML file
func TestLoadConfigEnvExpansion(t *testing.T) {
	t.Setenv("STAR_TOTALS_TEST_APP_NAME", "expanded-name")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.Name != "expanded-name" {
		t.Errorf("expected expanded app name, got %q", cfg.App.Name)
	}
}

// TestLoadWithDefaults tests that defaults fill in when the file is missing
func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Simulation.ScoreStdDev != 12.5 {
		t.Errorf("expected default score std dev 12.5, got %v", cfg.Simulation.ScoreStdDev)
	}
	if cfg.Simulation.NegBinomDispersion != 6.8 {
		t.Errorf("expected default dispersion 6.8, got %v", cfg.Simulation.NegBinomDispersion)
	}
	if cfg.Simulation.SampleCount != 50000 {
		t.Errorf("expected default sample count 50000, got %d", cfg.Simulation.SampleCount)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestValidateRejectsBadValues tests validator rules on config fields
func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg.App.LogLevel = "verbose"
	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for bad log level")
	}

	cfg.App.LogLevel = "info"
	cfg.App.Environment = "qa"
	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for bad environment")
	}

	cfg.App.Environment = "development"
	cfg.Simulation.SampleCount = 0
	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for zero sample count")
	}
}

// TestValidateProductionSeedRule tests the fixed-seed-in-production guard
func TestValidateProductionSeedRule(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg.App.Environment = "production"
	cfg.Simulation.Seed = 42
	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for fixed seed in production")
	}

	cfg.Simulation.Seed = 0
	if err := Validate(cfg); err != nil {
		t.Errorf("clock seed should be valid in production, got %v", err)
	}
}
