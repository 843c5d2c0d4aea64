package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the HTTP collectors on registerer.
func NewMetricsMiddleware(registerer prometheus.Registerer) (*MetricsMiddleware, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	for _, collector := range []prometheus.Collector{requests, latency} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return &MetricsMiddleware{requests: requests, latency: latency}, nil
}

// Handle observes every request. Unmatched paths share one label so scans
// cannot grow the series count.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.requests.WithLabelValues(route, method, strconv.Itoa(c.Response().Status)).Inc()
		m.latency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

		return nil
	}
}
