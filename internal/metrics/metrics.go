// Package metrics exposes lookup counters in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/five82/dexview/internal/presenter"
)

const namespace = "dexview"

// Lookups records settled lookups. It implements presenter.Observer.
type Lookups struct {
	total    *prometheus.CounterVec
	stale    prometheus.Counter
	duration *prometheus.HistogramVec
}

var _ presenter.Observer = (*Lookups)(nil)

// NewLookups registers the lookup collectors with reg.
func NewLookups(reg prometheus.Registerer) (*Lookups, error) {
	l := &Lookups{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Settled species lookups by outcome.",
		}, []string{"outcome"}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_total",
			Help:      "Lookup results discarded because a newer selection superseded them.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time from request to settled result.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{l.total, l.stale, l.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register lookup metrics: %w", err)
		}
	}
	return l, nil
}

// ObserveLookup implements presenter.Observer.
func (l *Lookups) ObserveLookup(outcome presenter.Outcome, elapsed time.Duration, stale bool) {
	l.total.WithLabelValues(string(outcome)).Inc()
	l.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
	if stale {
		l.stale.Inc()
	}
}

// Serve exposes gatherer on addr at /metrics until ctx is cancelled.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen metrics %s: %w", addr, err)
	}
	return serve(ctx, ln, gatherer)
}

func serve(ctx context.Context, ln net.Listener, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}
	return nil
}
