package metric

import "github.com/prometheus/client_golang/prometheus"

// Metrics contains the substrate-level metrics (not application-specific).
// Channel and stream instances report into these shared vectors, labeled
// by the owning component's name.
type Metrics struct {
	// Channel metrics
	PulsesAccepted   *prometheus.CounterVec
	PulsesDelivered  *prometheus.CounterVec
	PulsesDropped    *prometheus.CounterVec
	DeliveryDuration *prometheus.HistogramVec

	// Stream metrics
	StreamsActive   prometheus.Gauge
	StreamsReleased prometheus.Counter
	NoticesSent     *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all substrate metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		PulsesAccepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "obsidian",
				Subsystem: "channel",
				Name:      "pulses_accepted_total",
				Help:      "Total number of pulses accepted for delivery",
			},
			[]string{"channel"},
		),

		PulsesDelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "obsidian",
				Subsystem: "channel",
				Name:      "pulses_delivered_total",
				Help:      "Total number of pulses delivered to handlers",
			},
			[]string{"channel"},
		),

		PulsesDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "obsidian",
				Subsystem: "channel",
				Name:      "pulses_dropped_total",
				Help:      "Total number of pulses dropped due to a full queue",
			},
			[]string{"channel"},
		),

		DeliveryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "obsidian",
				Subsystem: "channel",
				Name:      "delivery_duration_seconds",
				Help:      "Handler invocation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel"},
		),

		StreamsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "obsidian",
				Subsystem: "stream",
				Name:      "active",
				Help:      "Number of streams currently active (not released)",
			},
		),

		StreamsReleased: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "obsidian",
				Subsystem: "stream",
				Name:      "released_total",
				Help:      "Total number of streams released",
			},
		),

		NoticesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "obsidian",
				Subsystem: "stream",
				Name:      "notices_sent_total",
				Help:      "Total number of release notices delivered, by endpoint",
			},
			[]string{"endpoint"},
		),
	}
}
