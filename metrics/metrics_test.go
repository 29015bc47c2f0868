package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisherMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPublisherMetrics(reg)

	m.MessagesSent.WithLabelValues("face").Inc()
	m.MessagesSent.WithLabelValues("face").Inc()
	m.Streaming.WithLabelValues("face").Set(1)

	assert.InDelta(t, 2, testutil.ToFloat64(m.MessagesSent.WithLabelValues("face")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Streaming.WithLabelValues("face")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.SendFailures.WithLabelValues("text")), 0)

	assert.Panics(t, func() { NewPublisherMetrics(reg) }, "double registration should panic")
}

func TestHandlerServesPublisherMetrics(t *testing.T) {
	reg := NewRegistry()
	m := NewPublisherMetrics(reg)
	m.ConnectAttempts.WithLabelValues("text").Inc()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `livelink_publisher_connect_attempts_total{variant="text"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
