// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries Prometheus instrumentation for the service. A nil
// *Metrics is valid and records nothing, so instrumentation stays
// optional.
type Metrics struct {
	trialDivisions prometheus.Counter
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
}

// NewMetrics registers the service collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		trialDivisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "crystalline",
			Subsystem: "prime",
			Name:      "trial_divisions_total",
			Help:      "Primality verdicts settled by full trial division.",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "crystalline",
			Subsystem: "prime",
			Name:      "cache_hits_total",
			Help:      "Queries short-circuited by the rainbow cache.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "crystalline",
			Subsystem: "prime",
			Name:      "cache_misses_total",
			Help:      "Queries that fell through the rainbow cache.",
		}),
	}
}

func (m *Metrics) observeTrialDivision() {
	if m != nil {
		m.trialDivisions.Inc()
	}
}

func (m *Metrics) observeCacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) observeCacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}
