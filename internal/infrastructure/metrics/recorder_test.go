package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/infrastructure/metrics"
)

func TestRecorder_CountsBridgeActivity(t *testing.T) {
	r := metrics.NewRecorder()

	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()
	r.EventAccepted("save.clicked")
	r.EventDropped(port.DropDetached)
	r.EventDropped(port.DropDetached)
	r.EventDropped(port.DropEmptyName)
	r.EventHandled("save.clicked", time.Millisecond, errors.New("boom"))
	r.EventUnhandled("mystery")

	count, err := testutil.GatherAndCount(r.Registry(),
		"uibridge_sessions_active",
		"uibridge_events_dropped_total",
		"uibridge_handler_errors_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	dropped, err := testutil.GatherAndCount(r.Registry(), "uibridge_events_dropped_total")
	require.NoError(t, err)
	assert.Equal(t, 2, dropped, "one series per reason")
}

func TestRecorder_HandlerServesTextFormat(t *testing.T) {
	r := metrics.NewRecorder()
	r.SessionOpened()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "uibridge_sessions_active 1")
	assert.Contains(t, string(body), "uibridge_sessions_created_total 1")
}
