package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once     sync.Once
	registry = prometheus.NewRegistry()

	dispatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_dispatch_total",
		Help: "Requests per terminal dispatch state",
	}, []string{"state"})

	routerFallbackTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_router_fallback_total",
		Help: "Classifications that ended in the deterministic fallback decision",
	}, []string{"reason"})

	speculativeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_speculative_retrieval_total",
		Help: "Speculative retrieval outcomes (reused/discarded/failed)",
	}, []string{"outcome"})

	retrievalLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_retrieval_latency_ms",
		Help:    "Latency of collection queries in milliseconds",
		Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3200},
	}, []string{"collection"})

	retrievalErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_retrieval_errors_total",
		Help: "Collection queries that failed and degraded to no hits",
	}, []string{"collection"})

	generationLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_generation_latency_ms",
		Help:    "Latency of generation backend calls in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000, 30000, 90000},
	}, []string{"model"})
)

func ensureRegistered() {
	once.Do(func() {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			dispatchTotal,
			routerFallbackTotal,
			speculativeTotal,
			retrievalLatency,
			retrievalErrors,
			generationLatency,
		)
	})
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	ensureRegistered()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Registry returns the service registry.
func Registry() *prometheus.Registry {
	ensureRegistered()
	return registry
}

func IncDispatch(state string) {
	ensureRegistered()
	dispatchTotal.WithLabelValues(state).Inc()
}

func IncRouterFallback(reason string) {
	ensureRegistered()
	routerFallbackTotal.WithLabelValues(reason).Inc()
}

func IncSpeculative(outcome string) {
	ensureRegistered()
	speculativeTotal.WithLabelValues(outcome).Inc()
}

// ObserveRetrieval records one collection query; failed queries also bump the error counter.
func ObserveRetrieval(collection string, start time.Time, err error) {
	ensureRegistered()
	retrievalLatency.WithLabelValues(collection).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		retrievalErrors.WithLabelValues(collection).Inc()
	}
}

func ObserveGeneration(model string, start time.Time) {
	ensureRegistered()
	generationLatency.WithLabelValues(model).Observe(float64(time.Since(start).Milliseconds()))
}
