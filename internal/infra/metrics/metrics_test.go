package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ClockTransitions(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveClockIn("ok")
	m.ObserveClockIn("ok")
	m.ObserveClockOut("ok", true)
	m.ObserveClockOut("blocked", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClockTransitions.WithLabelValues("clock_in", "ok", "manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClockTransitions.WithLabelValues("clock_out", "ok", "automatic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClockTransitions.WithLabelValues("clock_out", "blocked", "manual")))
}

func TestMetrics_ObserveHTTPAndLogin(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveHTTP(http.MethodPost, "/entries/clock-in", http.StatusCreated, 10*time.Millisecond)
	m.ObserveLogin("success")
	m.ObserveLogin("failure")
	m.ObserveLogin("failure")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/entries/clock-in", "201")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("failure")))
}

func TestMetrics_HandlerExposesCollectors(t *testing.T) {
	m := NewMetrics(NewRegistry())
	m.ObserveDB("close_entry", time.Millisecond, nil)
	m.ObserveDB("close_entry", time.Millisecond, errors.New("boom"))
	m.ObserveHoursRecorded(8.5)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `punchclock_db_query_duration_seconds_count{operation="close_entry",status="error"} 1`)
	assert.Contains(t, body, "punchclock_entry_hours_count 1")
	assert.Contains(t, body, "go_goroutines")
}
