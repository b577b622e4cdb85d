package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/beeauvin/obsidian/errors"
)

// Registry manages the registration and lifecycle of metrics. It owns a
// private prometheus registry pre-populated with the substrate metrics and
// lets callers register their own collectors under a component name with
// collision checking.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	metrics            *Metrics
	registered         map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a new metrics registry with the substrate metrics
// registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		metrics:            NewMetrics(),
		registered:         make(map[string]prometheus.Collector),
	}
	r.prometheusRegistry.MustRegister(
		r.metrics.PulsesAccepted,
		r.metrics.PulsesDelivered,
		r.metrics.PulsesDropped,
		r.metrics.DeliveryDuration,
		r.metrics.StreamsActive,
		r.metrics.StreamsReleased,
		r.metrics.NoticesSent,
	)
	return r
}

// PrometheusRegistry returns the underlying prometheus registry, for
// exposing via promhttp.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Core returns the substrate metrics.
func (r *Registry) Core() *Metrics {
	return r.metrics
}

// Register registers a caller-supplied collector under a component and
// metric name. Duplicate names are rejected.
func (r *Registry) Register(component, name string, c prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)

	if _, exists := r.registered[key]; exists {
		return errors.Wrap(
			fmt.Errorf("metric %s already registered for component %s", name, component),
			"Registry", "Register", "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if stderrors.As(err, &already) {
			return errors.Wrap(err, "Registry", "Register",
				fmt.Sprintf("prometheus conflict for metric %s", name))
		}
		return errors.Wrap(err, "Registry", "Register", "prometheus registration")
	}

	r.registered[key] = c
	return nil
}

// Unregister removes a previously registered collector. Returns true if
// the collector was found and removed.
func (r *Registry) Unregister(component, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	c, exists := r.registered[key]
	if !exists {
		return false
	}
	delete(r.registered, key)
	return r.prometheusRegistry.Unregister(c)
}
