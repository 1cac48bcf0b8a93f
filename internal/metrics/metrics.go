// Package metrics provides the centralized Prometheus metrics registry for
// the simulation service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "star_totals",
		Name:      "simulations_total",
		Help:      "Total number of simulations run",
	})
	SimulationErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "star_totals",
		Name:      "simulation_errors_total",
		Help:      "Total number of simulations rejected for invalid input",
	})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "star_totals",
		Name:      "recommendations_total",
		Help:      "Total recommendations by over/under label",
	}, []string{"recommendation"})
)

// Histogram metrics
var (
	FusedProbability = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "star_totals",
		Name:      "fused_probability",
		Help:      "Distribution of fused over-probabilities in percent",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "star_totals",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of a single simulation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(SimulationErrorsTotal)
		registry.MustRegister(RecommendationsTotal)
		registry.MustRegister(FusedProbability)
		registry.MustRegister(SimulationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulation records a completed simulation with its outcome.
func RecordSimulation(recommendation string, fusedProb, durationSeconds float64) {
	SimulationsTotal.Inc()
	RecommendationsTotal.WithLabelValues(recommendation).Inc()
	FusedProbability.Observe(fusedProb)
	SimulationDuration.Observe(durationSeconds)
}

// RecordSimulationError records a rejected simulation request.
func RecordSimulationError() {
	SimulationErrorsTotal.Inc()
}
