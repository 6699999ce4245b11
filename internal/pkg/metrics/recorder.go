// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the model-provider connectors.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder registers and updates the service's Prometheus metrics.
type Recorder struct {
	registry        *prom.Registry
	requestDuration *prom.HistogramVec
	requestResults  *prom.CounterVec
	modelCalls      *prom.CounterVec
}

// NewRecorder constructs and registers Prometheus metrics. Registering
// twice on the same registry reuses the already registered collectors.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	return &Recorder{
		registry: reg,
		requestDuration: register(reg, prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "scribe",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"})),
		requestResults: register(reg, prom.NewCounterVec(prom.CounterOpts{
			Namespace: "scribe",
			Name:      "http_requests_total",
			Help:      "HTTP request counts by route and status",
		}, []string{"method", "route", "status"})),
		modelCalls: register(reg, prom.NewCounterVec(prom.CounterOpts{
			Namespace: "scribe",
			Name:      "model_calls_total",
			Help:      "Upstream model provider calls by operation and result",
		}, []string{"operation", "result"})),
	}
}

// register adds a collector to the registry, adopting the existing one
// when an identical collector was registered before.
func register[C prom.Collector](reg *prom.Registry, collector C) C {
	err := reg.Register(collector)
	if err == nil {
		return collector
	}
	var already prom.AlreadyRegisteredError
	if errors.As(err, &already) {
		return already.ExistingCollector.(C)
	}
	panic(err)
}

// ObserveRequest records one handled HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, d time.Duration) {
	if r == nil || r.requestDuration == nil {
		return
	}
	r.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	r.requestResults.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// CountModelCall records one upstream model provider call.
func (r *Recorder) CountModelCall(operation, result string) {
	if r == nil || r.modelCalls == nil {
		return
	}
	r.modelCalls.WithLabelValues(operation, result).Inc()
}

// Middleware returns a gin middleware recording per-route request metrics.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// Handler returns the /metrics HTTP handler for this recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
