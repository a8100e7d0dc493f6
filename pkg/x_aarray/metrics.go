package x_aarray

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics mirrors the facade counters into Prometheus collectors.
type Metrics struct {
	insertCost prometheus.Counter
	searchCost prometheus.Counter
	deleteCost prometheus.Counter
	operations *prometheus.CounterVec
	entries    prometheus.Gauge
	panics     *prometheus.CounterVec
}

// NewMetrics registers the kvtrie collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		insertCost: f.NewCounter(prometheus.CounterOpts{
			Name: "kvtrie_insert_cost_total",
			Help: "Trie steps spent on inserts",
		}),
		searchCost: f.NewCounter(prometheus.CounterOpts{
			Name: "kvtrie_search_cost_total",
			Help: "Trie steps spent on lookups",
		}),
		deleteCost: f.NewCounter(prometheus.CounterOpts{
			Name: "kvtrie_delete_cost_total",
			Help: "Trie steps spent on deletes",
		}),
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kvtrie_operations_total",
			Help: "Facade operations by kind and outcome",
		}, []string{"op", "result"}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Name: "kvtrie_entries",
			Help: "Keys currently present",
		}),
		panics: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kvtrie_panics_total",
			Help: "Panics recovered from caller callbacks",
		}, []string{"op"}),
	}
}

// Operation labels.
const (
	opInsert  = "insert"
	opLookup  = "lookup"
	opDelete  = "delete"
	opIterate = "iterate"

	resultCreated = "created"
	resultUpdated = "updated"
	resultHit     = "hit"
	resultMiss    = "miss"
	resultError   = "error"
)

func (m *Metrics) observe(op, result string, steps, entries int) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, result).Inc()
	switch op {
	case opInsert:
		m.insertCost.Add(float64(steps))
	case opLookup:
		m.searchCost.Add(float64(steps))
	case opDelete:
		m.deleteCost.Add(float64(steps))
	}
	m.entries.Set(float64(entries))
}

func (m *Metrics) panicked(op string) {
	if m == nil {
		return
	}
	m.panics.WithLabelValues(op).Inc()
}

// WriteToTextfile dumps every collector gathered by g in the node-exporter
// textfile format.
func WriteToTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
