package server

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/spheregrid/pkg/observability"
)

// Generation results.
const (
	resultOK     = "ok"
	resultCached = "cached"
	resultShared = "shared"
	resultError  = "error"
)

type metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	hooks       *MetricsHooks
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		registry: reg,
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spheregrid_generations_total",
				Help: "Scene requests by result (ok, cached, shared, error).",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spheregrid_generation_duration_seconds",
				Help:    "Duration of pipeline runs, cache hits included.",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
		),
		hooks: NewMetricsHooks(reg),
	}
	reg.MustRegister(m.generations, m.duration)
	return m
}

// MetricsHooks records pipeline and cache events as Prometheus metrics. It
// implements observability.PipelineHooks and observability.CacheHooks.
type MetricsHooks struct {
	stages      *prometheus.HistogramVec
	stageErrors *prometheus.CounterVec
	cache       *prometheus.CounterVec
	cacheBytes  *prometheus.CounterVec
}

var (
	_ observability.PipelineHooks = (*MetricsHooks)(nil)
	_ observability.CacheHooks    = (*MetricsHooks)(nil)
)

// NewMetricsHooks creates the hook metrics and registers them on reg.
func NewMetricsHooks(reg prometheus.Registerer) *MetricsHooks {
	h := &MetricsHooks{
		stages: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spheregrid_stage_duration_seconds",
				Help:    "Duration of uncached pipeline stages (generate, render).",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
			},
			[]string{"stage"},
		),
		stageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spheregrid_stage_errors_total",
				Help: "Failed pipeline stages.",
			},
			[]string{"stage"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spheregrid_cache_events_total",
				Help: "Cache lookups and writes by key kind and event (hit, miss, set).",
			},
			[]string{"kind", "event"},
		),
		cacheBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spheregrid_cache_written_bytes_total",
				Help: "Bytes written to the cache by key kind.",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(h.stages, h.stageErrors, h.cache, h.cacheBytes)
	return h
}

func (h *MetricsHooks) OnGenerateStart(context.Context, int) {}

func (h *MetricsHooks) OnGenerateComplete(_ context.Context, _ int, d time.Duration, err error) {
	h.complete("generate", d, err)
}

func (h *MetricsHooks) OnRenderStart(context.Context, []string) {}

func (h *MetricsHooks) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	h.complete("render", d, err)
}

func (h *MetricsHooks) complete(stage string, d time.Duration, err error) {
	if err != nil {
		h.stageErrors.WithLabelValues(stage).Inc()
		return
	}
	h.stages.WithLabelValues(stage).Observe(d.Seconds())
}

func (h *MetricsHooks) OnCacheHit(_ context.Context, kind string) {
	h.cache.WithLabelValues(kind, "hit").Inc()
}

func (h *MetricsHooks) OnCacheMiss(_ context.Context, kind string) {
	h.cache.WithLabelValues(kind, "miss").Inc()
}

func (h *MetricsHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.cache.WithLabelValues(kind, "set").Inc()
	h.cacheBytes.WithLabelValues(kind).Add(float64(size))
}
