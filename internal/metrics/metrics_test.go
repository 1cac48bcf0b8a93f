package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordSimulation(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordSimulation("over", 53.2, 0.12)
		RecordSimulation("under", 41.7, 0.09)
	})
}

func TestRecordSimulationError(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordSimulationError()
	})
}

func TestHandler(t *testing.T) {
	InitRegistry()
	assert.NotNil(t, Handler())
}
