// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus collectors for interference evaluations, recomputes and cache loads.

// Package metrics exposes prometheus instrumentation for the assignment
// engine: interference evaluations, conflict-graph recomputes and the
// channel-occupancy cache.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recompute kinds.
const (
	KindFull        = "full"
	KindIncremental = "incremental"
)

// Cache load outcomes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Registry holds all metrics for the engine.
type Registry struct {
	InterferenceEvaluations *prometheus.CounterVec
	ConflictRecomputes      *prometheus.CounterVec
	ConflictRecomputeTime   *prometheus.HistogramVec
	InterferenceSum         prometheus.Gauge
	OccupancyCacheLoads     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every engine metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.InterferenceEvaluations = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshchan_interference_evaluations_total",
			Help: "Total number of pairwise interference evaluations",
		},
		[]string{"model"},
	)

	r.ConflictRecomputes = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshchan_conflict_recomputes_total",
			Help: "Total number of conflict graph recomputes",
		},
		[]string{"kind"},
	)

	r.ConflictRecomputeTime = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meshchan_conflict_recompute_duration_seconds",
			Help:    "Conflict graph recompute duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"kind"},
	)

	r.InterferenceSum = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "meshchan_conflict_interference_sum",
			Help: "Interference sum after the last recompute",
		},
	)

	r.OccupancyCacheLoads = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshchan_occupancy_cache_loads_total",
			Help: "Channel occupancy cache load attempts",
		},
		[]string{"status"},
	)

	return r
}

// RecordEvaluation counts one interference evaluation for model.
func (r *Registry) RecordEvaluation(model string) {
	if r == nil {
		return
	}
	r.InterferenceEvaluations.WithLabelValues(model).Inc()
}

// RecordRecompute records a conflict graph recompute and the resulting sum.
func (r *Registry) RecordRecompute(kind string, duration time.Duration, sum float64) {
	if r == nil {
		return
	}
	r.ConflictRecomputes.WithLabelValues(kind).Inc()
	r.ConflictRecomputeTime.WithLabelValues(kind).Observe(duration.Seconds())
	r.InterferenceSum.Set(sum)
}

// RecordCacheLoad records a channel occupancy cache load attempt.
func (r *Registry) RecordCacheLoad(err error) {
	if r == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	r.OccupancyCacheLoads.WithLabelValues(status).Inc()
}

// Gatherer returns the underlying registry for exposition.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
