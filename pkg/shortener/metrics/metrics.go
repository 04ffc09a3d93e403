package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// The prometheus registry panics on duplicate registration, so Init is
	// guarded by a once.
	once sync.Once

	// HTTPRequestsTotal counts completed requests by method, route template
	// and status. Route templates (c.FullPath) keep label cardinality bounded.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDurationSeconds records request latency by method and route.
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distributions.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RedirectsTotal counts short URL resolutions by outcome ("hit" or "miss").
	RedirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of short URL redirect lookups.",
		},
		[]string{"outcome"},
	)
)

// Init registers all collectors. Safe to call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			RedirectsTotal,
		)
	})
}

// Middleware records per-request counters and latency.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		HTTPRequestDurationSeconds.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}
