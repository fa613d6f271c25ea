package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager holds the storefront's Prometheus collectors on a private
// registry.
type Manager struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestLatency  *prometheus.HistogramVec
	CartItemsAdded  prometheus.Counter
	OrdersPlaced    prometheus.Counter
	OrdersFailed    *prometheus.CounterVec
	OrderValue      prometheus.Histogram
	CultureSwitches *prometheus.CounterVec
}

func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	m := &Manager{
		Registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CartItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_items_added_total",
			Help:      "Total quantity of products added to carts.",
		}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed.",
		}),
		OrdersFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_failed_total",
			Help:      "Total number of failed checkouts by reason.",
		}, []string{"reason"}),
		OrderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value",
			Help:      "Total value of placed orders.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
		CultureSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "culture_switches_total",
			Help:      "Total number of UI language changes by culture.",
		}, []string{"culture"}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestLatency,
		m.CartItemsAdded,
		m.OrdersPlaced,
		m.OrdersFailed,
		m.OrderValue,
		m.CultureSwitches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Manager) OrderPlaced(lines int, total float64) {
	m.OrdersPlaced.Inc()
	m.OrderValue.Observe(total)
}

func (m *Manager) OrderFailed(reason string) {
	m.OrdersFailed.WithLabelValues(reason).Inc()
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
