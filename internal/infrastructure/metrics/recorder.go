// Package metrics exposes bridge activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/uibridge/internal/application/port"
)

const namespace = "uibridge"

// Recorder implements port.BridgeMetrics on a Prometheus registry.
// Event names are free-form, so they are never used as label values.
type Recorder struct {
	registry *prometheus.Registry

	sessionsActive  prometheus.Gauge
	sessionsCreated prometheus.Counter
	eventsAccepted  prometheus.Counter
	eventsDropped   *prometheus.CounterVec
	eventsUnhandled prometheus.Counter
	handlerErrors   prometheus.Counter
	handlerDuration prometheus.Histogram
}

var _ port.BridgeMetrics = (*Recorder)(nil)

// NewRecorder registers the bridge metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of sessions currently bound to a window.",
		}),
		sessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Number of sessions created by the factory.",
		}),
		eventsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_accepted_total",
			Help:      "Events accepted by a bound forwarder.",
		}),
		eventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events dropped at the forwarder, by reason.",
		}, []string{"reason"}),
		eventsUnhandled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_unhandled_total",
			Help:      "Events with no registered handler.",
		}),
		handlerErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_errors_total",
			Help:      "Event handlers that returned an error or panicked.",
		}),
		handlerDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "handler_duration_seconds",
			Help:      "Time spent in event handlers on the session loop.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}

func (r *Recorder) SessionOpened() {
	r.sessionsCreated.Inc()
	r.sessionsActive.Inc()
}

func (r *Recorder) SessionClosed() {
	r.sessionsActive.Dec()
}

func (r *Recorder) EventAccepted(string) {
	r.eventsAccepted.Inc()
}

func (r *Recorder) EventDropped(reason string) {
	r.eventsDropped.WithLabelValues(reason).Inc()
}

func (r *Recorder) EventHandled(_ string, elapsed time.Duration, err error) {
	r.handlerDuration.Observe(elapsed.Seconds())
	if err != nil {
		r.handlerErrors.Inc()
	}
}

func (r *Recorder) EventUnhandled(string) {
	r.eventsUnhandled.Inc()
}

// Registry returns the registry the metrics live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
