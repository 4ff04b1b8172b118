package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK        = "ok"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

var (
	// HTTPRequestsTotal counts requests by route template, not raw path.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "monitor_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MonitorOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_operations_total",
			Help: "Monitor create/update/delete operations by result",
		},
		[]string{"operation", "result"},
	)

	GrpcRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monitor_grpc_rate_limited_total",
			Help: "gRPC calls rejected by the per-model rate limiter",
		},
	)
)

func RecordMonitorOperation(operation, result string) {
	MonitorOperationsTotal.WithLabelValues(operation, result).Inc()
}

// GinMiddleware records request counts and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
