package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveBooking(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("ops-panel", reg)

	m.ObserveBooking(BookingCreated)
	m.ObserveBooking(BookingCreated)
	m.ObserveBooking(BookingConflict)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues(BookingCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues(BookingConflict)))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("ops-panel", reg)

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/availability", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/availability", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestMetrics_ObserveDeletionAndSlots(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("ops-panel", reg)

	m.ObserveDeletion("position")
	m.ObserveAvailableSlots(14)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.deletionsTotal.WithLabelValues("position")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.availableSlots))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveBooking(BookingFailed)
	m.ObserveHTTPRequest(http.MethodPost, "/", http.StatusCreated, time.Second)
	m.ObserveAvailableSlots(3)
	m.ObserveDeletion("id")
}
