package models

import (
	"errors"
	"math"
	"testing"
)

func TestTeamStatsValidate(t *testing.T) {
	valid := TeamStats{Avg: 110, Allow: 108, OverRate: 0.55}
	if err := valid.Validate("home"); err != nil {
		t.Fatalf("expected valid stats, got %v", err)
	}

	cases := []struct {
		name  string
		stats TeamStats
		field string
	}{
		{"zero avg", TeamStats{Avg: 0, Allow: 108, OverRate: 0.5}, "home.avg"},
		{"nan avg", TeamStats{Avg: math.NaN(), Allow: 108, OverRate: 0.5}, "home.avg"},
		{"negative allow", TeamStats{Avg: 110, Allow: -1, OverRate: 0.5}, "home.allow"},
		{"over rate below zero", TeamStats{Avg: 110, Allow: 108, OverRate: -0.1}, "home.over_rate"},
		{"over rate above one", TeamStats{Avg: 110, Allow: 108, OverRate: 1.1}, "home.over_rate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.stats.Validate("home")
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %T", err)
			}
			if invalid.Field != tc.field {
				t.Errorf("field = %q, want %q", invalid.Field, tc.field)
			}
		})
	}
}

func TestInvalidInputErrorWrapsSentinel(t *testing.T) {
	err := NewInvalidInput("target", "must be positive")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("InvalidInputError must wrap ErrInvalidInput")
	}
	want := "invalid input: target: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSimulationResultIsOver(t *testing.T) {
	over := SimulationResult{Recommendation: RecommendationOver}
	under := SimulationResult{Recommendation: RecommendationUnder}
	if !over.IsOver() || under.IsOver() {
		t.Error("IsOver must reflect the recommendation label")
	}
}
