package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewCounter registers the shared counter vector; call it once per process.
func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "filesmanager",
			Name:      "general_counters",
			Help:      "Application events keyed by result.",
		},
		[]string{"result"})
}
