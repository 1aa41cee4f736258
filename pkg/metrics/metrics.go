// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "game_store"

// Sell rejection reasons, kept low-cardinality for labels.
const (
	ReasonNotFound          = "not_found"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInvalidQuantity   = "invalid_quantity"
)

type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	unitsSold       prometheus.Counter
	sellRejections  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		unitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_units_sold_total",
			Help:      "Total number of game units sold.",
		}),
		sellRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "game_sell_rejections_total",
				Help:      "Sell requests rejected by the inventory.",
			},
			[]string{"reason"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.unitsSold,
		m.sellRejections,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordSale(units int) {
	m.unitsSold.Add(float64(units))
}

func (m *Metrics) RecordSellRejection(reason string) {
	m.sellRejections.WithLabelValues(reason).Inc()
}
