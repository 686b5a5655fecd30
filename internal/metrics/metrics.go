package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ordersPlaced    prometheus.Counter
	ledgerOps       *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	simulatorTicks  prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presto_http_requests_total",
			Help: "The total number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "presto_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "presto_orders_placed_total",
			Help: "The total number of orders placed from chat",
		}),
		ledgerOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presto_ledger_operations_total",
			Help: "Wallet operations by kind and outcome",
		}, []string{"op", "result"}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presto_active_sessions",
			Help: "The number of live sessions",
		}),
		simulatorTicks: factory.NewCounter(prometheus.CounterOpts{
			Name: "presto_progress_ticks_total",
			Help: "The total number of order progress ticks",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

// OrderPlaced counts an order placed from chat.
func (m *Metrics) OrderPlaced() {
	m.ordersPlaced.Inc()
}

// LedgerOperation counts a wallet operation outcome.
func (m *Metrics) LedgerOperation(op, result string) {
	m.ledgerOps.WithLabelValues(op, result).Inc()
}

// SessionsChanged sets the live session gauge.
func (m *Metrics) SessionsChanged(n int) {
	m.activeSessions.Set(float64(n))
}

// ObserveTick counts a simulator tick and refreshes the session gauge.
func (m *Metrics) ObserveTick(sessions int) {
	m.simulatorTicks.Inc()
	m.activeSessions.Set(float64(sessions))
}
