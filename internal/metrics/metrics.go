// Package metrics exposes Prometheus instrumentation for the headless
// server: detection call outcomes and latency, catalog composition, and MCP
// tool usage.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cloudboard/internal/catalog"
	"cloudboard/internal/detect"
)

// Detection outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type ServerMetrics struct {
	registry *prometheus.Registry

	detectionTotal    *prometheus.CounterVec
	detectionDuration *prometheus.HistogramVec
	catalogCompanies  *prometheus.GaugeVec
	providerCompanies *prometheus.GaugeVec
	toolCallsTotal    *prometheus.CounterVec
}

func NewServerMetrics() *ServerMetrics {
	registry := prometheus.NewRegistry()

	detectionTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudboard",
			Subsystem: "detection",
			Name:      "requests_total",
			Help:      "Total detection calls by outcome.",
		},
		[]string{"outcome"},
	)
	detectionDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudboard",
			Subsystem: "detection",
			Name:      "duration_seconds",
			Help:      "Detection call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	catalogCompanies := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cloudboard",
			Subsystem: "catalog",
			Name:      "companies",
			Help:      "Cataloged companies by origin.",
		},
		[]string{"origin"},
	)
	providerCompanies := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cloudboard",
			Subsystem: "catalog",
			Name:      "provider_companies",
			Help:      "Cataloged companies by cloud provider.",
		},
		[]string{"provider"},
	)
	toolCallsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudboard",
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "Total MCP tool invocations by tool and status.",
		},
		[]string{"tool", "status"},
	)

	registry.MustRegister(
		detectionTotal,
		detectionDuration,
		catalogCompanies,
		providerCompanies,
		toolCallsTotal,
	)

	return &ServerMetrics{
		registry:          registry,
		detectionTotal:    detectionTotal,
		detectionDuration: detectionDuration,
		catalogCompanies:  catalogCompanies,
		providerCompanies: providerCompanies,
		toolCallsTotal:    toolCallsTotal,
	}
}

// Handler serves the registry for scraping.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentDetector wraps a detector so every call lands in the detection
// counters, regardless of which code path triggered it.
func (m *ServerMetrics) InstrumentDetector(next detect.Detector) detect.Detector {
	return detect.Func(func(ctx context.Context, rawURL string) (catalog.Provider, error) {
		start := time.Now()
		provider, err := next.Detect(ctx, rawURL)
		outcome := OutcomeSuccess
		if err != nil {
			outcome = OutcomeError
		}
		m.detectionTotal.WithLabelValues(outcome).Inc()
		m.detectionDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		return provider, err
	})
}

// ObserveCatalog refreshes the composition gauges from the store. Called
// after every successful add and once at startup.
func (m *ServerMetrics) ObserveCatalog(store *catalog.Store) {
	m.catalogCompanies.WithLabelValues("seed").Set(float64(store.SeedCount()))
	m.catalogCompanies.WithLabelValues("session").Set(float64(store.SessionCount()))

	counts := catalog.Counts(store.All())
	for _, p := range catalog.Providers() {
		m.providerCompanies.WithLabelValues(p.String()).Set(float64(counts[p]))
	}
}

// RecordToolCall counts one MCP tool invocation.
func (m *ServerMetrics) RecordToolCall(tool, status string) {
	if tool == "" {
		tool = "unknown"
	}
	m.toolCallsTotal.WithLabelValues(tool, status).Inc()
}
