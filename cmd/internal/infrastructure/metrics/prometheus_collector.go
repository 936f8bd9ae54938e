package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector records HTTP traffic and postal code lookups.
type PrometheusCollector struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	lookupCounter  *prometheus.CounterVec
}

// NewPrometheusCollector registers the collectors on reg, use prometheus.DefaultRegisterer
// to expose them through promhttp.Handler.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)

	return &PrometheusCollector{
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "agrodog",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),

		requestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "agrodog",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
			},
			[]string{"method", "route"},
		),

		lookupCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "agrodog",
				Name:      "postal_code_lookups_total",
				Help:      "Postal code lookups by result (found, not_found, invalid, error)",
			},
			[]string{"result"},
		),
	}
}

func (c *PrometheusCollector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *PrometheusCollector) IncrementPostalCodeLookup(result string) {
	c.lookupCounter.WithLabelValues(result).Inc()
}
