package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/api/packages", http.StatusOK, time.Millisecond)
		m.ObserveTransition("customer-info", "advanced")
		m.ObserveSubmission("success")
		m.ObserveBookingCreated("boat1")
		m.SetCatalogPackages(7)
		m.SetActiveSessions(2)
		m.ObserveDBQuery("insert", time.Millisecond, true)
		m.SetDBPoolStats(3, 1, 2)
		m.ObserveRateLimited("/api/bookings")
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New("rhumuda-booking")

	m.ObserveTransition("customer-info", "rejected")
	m.ObserveTransition("customer-info", "rejected")
	m.ObserveSubmission("failure")
	m.SetCatalogPackages(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.wizardTransitionsTotal.WithLabelValues("customer-info", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingSubmissionsTotal.WithLabelValues("failure")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.catalogPackages))
}

func TestMetrics_DB(t *testing.T) {
	m := New("rhumuda-booking")

	m.ObserveDBQuery("select", 5*time.Millisecond, false)
	m.ObserveDBQuery("insert", 5*time.Millisecond, true)
	m.SetDBPoolStats(4, 1, 3)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("insert")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConns))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbIdleConns))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("rhumuda-booking")
	m.ObserveHTTPRequest(http.MethodPost, "/inquiry/next", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="POST",route="/inquiry/next",service="rhumuda-booking",status="200"} 1`)
}
