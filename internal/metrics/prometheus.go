package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "mvcore"

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	registry *prometheus.Registry

	notificationsSent *prometheus.CounterVec
	deliveries        *prometheus.CounterVec
	deliveryDuration  *prometheus.HistogramVec
	commandsExecuted  *prometheus.CounterVec
	coresActive       prometheus.Gauge
}

// NewPrometheus creates a recorder with its own registry.
// An empty namespace uses DefaultNamespace.
func NewPrometheus(namespace string) *Prometheus {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Notifications dispatched through a core's view.",
		}, []string{"core", "notification"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_deliveries_total",
			Help:      "Individual observer deliveries by outcome.",
		}, []string{"core", "notification", "outcome"}),
		deliveryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "observer_delivery_seconds",
			Help:      "Time spent inside a single observer.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"core"}),
		commandsExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_executed_total",
			Help:      "Command executions by outcome.",
		}, []string{"core", "notification", "outcome"}),
		coresActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cores_active",
			Help:      "Cores currently registered.",
		}),
	}

	p.registry.MustRegister(
		p.notificationsSent,
		p.deliveries,
		p.deliveryDuration,
		p.commandsExecuted,
		p.coresActive,
	)
	return p
}

// Registry returns the underlying Prometheus registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// NotificationSent implements Recorder.
func (p *Prometheus) NotificationSent(core, name string) {
	p.notificationsSent.WithLabelValues(core, name).Inc()
}

// ObserverNotified implements Recorder.
func (p *Prometheus) ObserverNotified(core, name string, d time.Duration, err error) {
	p.deliveries.WithLabelValues(core, name, OutcomeOf(err)).Inc()
	p.deliveryDuration.WithLabelValues(core).Observe(d.Seconds())
}

// CommandExecuted implements Recorder.
func (p *Prometheus) CommandExecuted(core, name string, err error) {
	p.commandsExecuted.WithLabelValues(core, name, OutcomeOf(err)).Inc()
}

// CoreCreated implements Recorder.
func (p *Prometheus) CoreCreated(string) {
	p.coresActive.Inc()
}

// CoreRemoved implements Recorder.
func (p *Prometheus) CoreRemoved(core string) {
	p.coresActive.Dec()
	p.notificationsSent.DeletePartialMatch(prometheus.Labels{"core": core})
	p.deliveries.DeletePartialMatch(prometheus.Labels{"core": core})
	p.deliveryDuration.DeletePartialMatch(prometheus.Labels{"core": core})
	p.commandsExecuted.DeletePartialMatch(prometheus.Labels{"core": core})
}

// WriteText writes every gathered metric family in the Prometheus text format.
func (p *Prometheus) WriteText(w io.Writer) error {
	families, err := p.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
