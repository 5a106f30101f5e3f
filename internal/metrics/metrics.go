// Package metrics holds the Prometheus collectors for the preview server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the collectors the HTTP server records into.
type Metrics struct {
	Generations        *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
}

// New creates the collectors and registers them with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posy_generations_total",
				Help: "Total number of prompt generations",
			},
			[]string{"preset"},
		),
		GenerationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "posy_generation_duration_seconds",
				Help:    "Duration of prompt generations",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.Generations, m.GenerationDuration)
	return m
}
