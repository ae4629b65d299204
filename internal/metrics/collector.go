package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the service.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	requestDuration prometheus.Histogram
	uploadsTotal    prometheus.Counter
	uploadBytes     prometheus.Counter
	authFailures    prometheus.Counter
}

// NewCollector creates and registers all service metrics.
func NewCollector() *Collector {
	return &Collector{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_ms",
				Help:    "Latency of HTTP requests in milliseconds",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
			},
		),
		uploadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "image_uploads_total",
				Help: "Total number of accepted image uploads",
			},
		),
		uploadBytes: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "image_upload_bytes_total",
				Help: "Total bytes of accepted image uploads",
			},
		),
		authFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auth_failures_total",
				Help: "Total number of rejected authentication attempts",
			},
		),
	}
}

// ObserveUpload records an accepted image upload of the given size.
func (c *Collector) ObserveUpload(sizeBytes int64) {
	c.uploadsTotal.Inc()
	c.uploadBytes.Add(float64(sizeBytes))
}

// IncrementAuthFailures increments the rejected-authentication counter.
func (c *Collector) IncrementAuthFailures() {
	c.authFailures.Inc()
}

// Middleware returns a fiber handler that records request counts and latency.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		status := ctx.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		c.httpRequests.WithLabelValues(ctx.Method(), ctx.Route().Path, strconv.Itoa(status)).Inc()
		c.requestDuration.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
		return err
	}
}
