package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry lookup outcomes used as the "outcome" label.
const (
	OutcomeSuccess        = "success"
	OutcomeNotFound       = "not_found"
	OutcomeRateLimited    = "rate_limited"
	OutcomeRegistryError  = "registry_error"
	OutcomeInvalidPayload = "invalid_payload"
)

// Metrics methods are nil-safe so that components built without metrics
// still work.
type Metrics struct {
	RecordsDistributed prometheus.Counter
	RegistryLookups    *prometheus.CounterVec
	RegistryCacheHits  prometheus.Counter
}

// New registers every collector on reg. Pass prometheus.DefaultRegisterer in
// the server and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsDistributed: factory.NewCounter(prometheus.CounterOpts{
			Name: "dialpool_records_distributed_total",
			Help: "Total number of records handed to agents by distribution or renewal",
		}),
		RegistryLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dialpool_registry_lookups_total",
			Help: "Registry HTTP lookups by outcome",
		}, []string{"outcome"}),
		RegistryCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "dialpool_registry_cache_hits_total",
			Help: "Registry lookups served from the payload cache",
		}),
	}
}

func (m *Metrics) AddRecordsDistributed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RecordsDistributed.Add(float64(n))
}

func (m *Metrics) ObserveRegistryLookup(outcome string) {
	if m == nil {
		return
	}
	m.RegistryLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementRegistryCacheHits() {
	if m == nil {
		return
	}
	m.RegistryCacheHits.Inc()
}
