// SPDX-License-Identifier: MIT
package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the construction collectors of one Server.
type metrics struct {
	// constructions counts POST /v1/trees outcomes.
	// Labels: algorithm (registered name or "unknown"), outcome ("ok" or a lower-case error code)
	constructions *prometheus.CounterVec

	// duration measures successful and failed constructions that passed decoding.
	// Labels: algorithm
	duration *prometheus.HistogramVec
}

// newMetrics registers the collectors on reg.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		constructions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "decenttree",
			Name:      "constructions_total",
			Help:      "Tree construction requests by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "decenttree",
			Name:      "construction_duration_seconds",
			Help:      "Time spent validating and constructing a tree",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		}, []string{"algorithm"}),
	}
}
