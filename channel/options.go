package channel

import (
	"log/slog"

	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
)

// Option configures channel construction.
type Option[P pulse.Identifiable] func(*Channel[P])

// WithName sets the channel's diagnostic name, used in logs and as the
// metrics label. Defaults to "channel-" plus a short identifier prefix.
func WithName[P pulse.Identifiable](name string) Option[P] {
	return func(c *Channel[P]) {
		if name != "" {
			c.name = name
		}
	}
}

// WithQueueSize sets the delivery queue capacity. Values below one fall
// back to DefaultQueueSize.
func WithQueueSize[P pulse.Identifiable](size int) Option[P] {
	return func(c *Channel[P]) {
		if size > 0 {
			c.queue = make(chan pulse.Pulse[P], size)
		}
	}
}

// WithLogger sets the structured logger used for drop and panic reports.
// Defaults to slog.Default.
func WithLogger[P pulse.Identifiable](logger *slog.Logger) Option[P] {
	return func(c *Channel[P]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics wires the channel to a metrics registry. The channel reports
// into the registry's substrate metrics labeled with its name. The series
// are bound after all options apply, so ordering relative to WithName does
// not matter.
func WithMetrics[P pulse.Identifiable](registry *metric.Registry) Option[P] {
	return func(c *Channel[P]) {
		c.registry = registry
	}
}
