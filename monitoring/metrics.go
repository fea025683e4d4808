package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	eventOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_operations_total",
			Help: "Event create/update/cancel operations by outcome",
		},
		[]string{"operation", "status"},
	)

	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_form_validation_failures_total",
			Help: "Form submissions rejected by the schema validator",
		},
		[]string{"operation"},
	)

	patchNoops = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_patch_noops_total",
			Help: "Submits that produced an empty patch and skipped the write",
		},
	)
)

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func TrackEventOperation(operation, status string) {
	eventOperations.WithLabelValues(operation, status).Inc()
}

func TrackValidationFailure(operation string) {
	validationFailures.WithLabelValues(operation).Inc()
}

func TrackPatchNoop() {
	patchNoops.Inc()
}
