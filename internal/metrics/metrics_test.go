package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexview/internal/presenter"
)

func TestLookups_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := NewLookups(reg)
	require.NoError(t, err)

	l.ObserveLookup(presenter.OutcomeSuccess, 100*time.Millisecond, false)
	l.ObserveLookup(presenter.OutcomeSuccess, 200*time.Millisecond, true)
	l.ObserveLookup(presenter.OutcomeNotFound, 50*time.Millisecond, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(l.total.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.total.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.stale))
	assert.Equal(t, 2, testutil.CollectAndCount(l.duration))
}

func TestNewLookups_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewLookups(reg)
	require.NoError(t, err)

	_, err = NewLookups(reg)
	assert.Error(t, err)
}

func TestServe_ExposesMetricsUntilCancelled(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := NewLookups(reg)
	require.NoError(t, err)
	l.ObserveLookup(presenter.OutcomeSuccess, time.Millisecond, false)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- serve(ctx, ln, reg) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `dexview_lookups_total{outcome="success"} 1`))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
