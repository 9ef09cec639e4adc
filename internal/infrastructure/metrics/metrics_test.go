package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AddRecordsDistributed(3)
	m.AddRecordsDistributed(0)
	m.ObserveRegistryLookup(OutcomeSuccess)
	m.ObserveRegistryLookup(OutcomeSuccess)
	m.ObserveRegistryLookup(OutcomeNotFound)
	m.IncrementRegistryCacheHits()

	assert.Equal(t, float64(3), testutil.ToFloat64(m.RecordsDistributed))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.RegistryLookups.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RegistryLookups.WithLabelValues(OutcomeNotFound)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RegistryCacheHits))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AddRecordsDistributed(1)
		m.ObserveRegistryLookup(OutcomeRegistryError)
		m.IncrementRegistryCacheHits()
	})
}
