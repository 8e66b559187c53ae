package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор прометеевских метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	checkoutSessionsInFlight prometheus.Gauge
	checkoutOutcomesTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
// (экспонируются через promhttp.Handler в main)
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		checkoutSessionsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "checkout_sessions_in_flight",
			Help: "Number of checkout sessions currently polling for payment status",
		}),

		checkoutOutcomesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_outcomes_total",
			Help: "Terminal checkout outcomes by state (approved, rejected, timed_out, failed)",
		}, []string{"service", "outcome"}),
	}
}

// ObserveHTTPRequest записывает метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// CheckoutStarted инкрементирует gauge активных checkout-сессий
func (m *Metrics) CheckoutStarted() {
	m.checkoutSessionsInFlight.Inc()
}

// CheckoutFinished декрементирует gauge и записывает терминальный исход
func (m *Metrics) CheckoutFinished(outcome string) {
	m.checkoutSessionsInFlight.Dec()
	m.checkoutOutcomesTotal.WithLabelValues(m.serviceName, outcome).Inc()
}
