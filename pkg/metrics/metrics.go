package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-коллекторов сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены в конфиге,
// потребители получают nil и просто ничего не пишут.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	wizardTransitionsTotal  *prometheus.CounterVec
	bookingSubmissionsTotal *prometheus.CounterVec
	bookingsCreatedTotal    *prometheus.CounterVec
	catalogPackages         prometheus.Gauge
	activeSessions          prometheus.Gauge

	dbQueryDuration  *prometheus.HistogramVec
	dbQueryErrors    *prometheus.CounterVec
	dbOpenConns      prometheus.Gauge
	dbInUseConns     prometheus.Gauge
	dbIdleConns      prometheus.Gauge
	rateLimitedTotal *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в собственном registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),

		wizardTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "inquiry_wizard_transitions_total",
			Help:        "Wizard step transitions by source step and outcome",
			ConstLabels: labels,
		}, []string{"from", "outcome"}),

		bookingSubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "inquiry_booking_submissions_total",
			Help:        "Booking submissions sent by the wizard",
			ConstLabels: labels,
		}, []string{"result"}),

		bookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted by the booking API",
			ConstLabels: labels,
		}, []string{"package_type"}),

		catalogPackages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "inquiry_catalog_packages",
			Help:        "Packages currently held in the loaded catalog",
			ConstLabels: labels,
		}),

		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "inquiry_active_sessions",
			Help:        "Wizard sessions currently held in memory",
			ConstLabels: labels,
		}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"operation"}),

		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Failed database queries by operation",
			ConstLabels: labels,
		}, []string{"operation"}),

		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),

		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),

		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),

		rateLimitedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_rate_limited_total",
			Help:        "Requests rejected by the rate limiter",
			ConstLabels: labels,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.wizardTransitionsTotal,
		m.bookingSubmissionsTotal,
		m.bookingsCreatedTotal,
		m.catalogPackages,
		m.activeSessions,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.rateLimitedTotal,
	)

	return m
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveTransition(from, outcome string) {
	if m == nil {
		return
	}
	m.wizardTransitionsTotal.WithLabelValues(from, outcome).Inc()
}

func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.bookingSubmissionsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveBookingCreated(packageType string) {
	if m == nil {
		return
	}
	m.bookingsCreatedTotal.WithLabelValues(packageType).Inc()
}

func (m *Metrics) SetCatalogPackages(n int) {
	if m == nil {
		return
	}
	m.catalogPackages.Set(float64(n))
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if failed {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
	m.dbIdleConns.Set(float64(idle))
}

func (m *Metrics) ObserveRateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimitedTotal.WithLabelValues(route).Inc()
}
