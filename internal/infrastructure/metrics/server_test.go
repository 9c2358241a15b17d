package metrics_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/infrastructure/metrics"
)

func TestServer_ServesMetricsUntilCancelled(t *testing.T) {
	r := metrics.NewRecorder()
	r.SessionOpened()

	srv, err := metrics.Listen("127.0.0.1:0", r)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "uibridge_sessions_active 1")

	health, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	require.NoError(t, health.Body.Close())
	assert.Equal(t, http.StatusNoContent, health.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListen_BadAddr(t *testing.T) {
	_, err := metrics.Listen("not-an-addr", metrics.NewRecorder())
	assert.Error(t, err)
}
