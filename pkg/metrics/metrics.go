package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smc"

// Результаты бронирования для метки result
const (
	BookingCreated  = "created"
	BookingConflict = "conflict"
	BookingInvalid  = "invalid"
	BookingFailed   = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	availableSlots      prometheus.Histogram
	deletionsTotal      *prometheus.CounterVec
}

// New регистрирует метрики в reg (nil - prometheus.DefaultRegisterer)
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route and status code",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "attempts_total",
			Help:        "Booking attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		availableSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "available_slots",
			Help:        "Number of offerable slots returned per availability query",
			ConstLabels: constLabels,
			Buckets:     prometheus.LinearBuckets(0, 4, 7),
		}),
		deletionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "deletions_total",
			Help:        "Deleted appointments by lookup mode",
			ConstLabels: constLabels,
		}, []string{"mode"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.availableSlots,
		m.deletionsTotal,
	)

	return m
}

// ObserveHTTPRequest учитывает один HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBooking учитывает попытку бронирования
func (m *Metrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(result).Inc()
}

// ObserveAvailableSlots учитывает размер ответа о доступности
func (m *Metrics) ObserveAvailableSlots(count int) {
	if m == nil {
		return
	}
	m.availableSlots.Observe(float64(count))
}

// ObserveDeletion учитывает удаление записи (mode: "id" или "position")
func (m *Metrics) ObserveDeletion(mode string) {
	if m == nil {
		return
	}
	m.deletionsTotal.WithLabelValues(mode).Inc()
}
