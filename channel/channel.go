package channel

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/beeauvin/obsidian/errors"
	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
)

// Handler receives one pulse at a time from a channel's consumer goroutine.
type Handler[P pulse.Identifiable] func(pulse.Pulse[P])

// DefaultQueueSize is the queue capacity used when WithQueueSize is not
// supplied.
const DefaultQueueSize = 1024

// Channel is an asynchronous, single-handler delivery sink. See the
// package documentation for the delivery contract.
type Channel[P pulse.Identifiable] struct {
	id      string
	name    string
	handler Handler[P]

	queue chan pulse.Pulse[P]
	done  chan struct{}

	mu     sync.Mutex
	closed bool

	logger   *slog.Logger
	registry *metric.Registry
	metrics  *instruments

	// Statistics (atomic)
	accepted  atomic.Int64
	delivered atomic.Int64
	dropped   atomic.Int64
}

// instruments holds the pre-labeled prometheus series for one channel.
type instruments struct {
	accepted         prometheus.Counter
	delivered        prometheus.Counter
	dropped          prometheus.Counter
	deliveryDuration prometheus.Observer
}

// Stats is a snapshot of a channel's delivery counters.
type Stats struct {
	// Accepted is the number of pulses admitted to the queue.
	Accepted int64

	// Delivered is the number of handler invocations completed,
	// including ones that panicked.
	Delivered int64

	// Dropped is the number of pulses rejected due to a full queue
	// or a closed channel.
	Dropped int64

	// QueueDepth is the number of pulses currently awaiting delivery.
	QueueDepth int
}

// New creates a channel bound to the given handler and starts its consumer
// goroutine. Construction always succeeds; a nil handler panics, matching
// the contract that a channel without a handler is a programming error
// rather than a runtime condition.
func New[P pulse.Identifiable](handler Handler[P], opts ...Option[P]) *Channel[P] {
	if handler == nil {
		panic(errors.ErrNilHandler)
	}

	id := uuid.NewString()
	c := &Channel[P]{
		id:      id,
		name:    "channel-" + id[:8],
		handler: handler,
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.queue == nil {
		c.queue = make(chan pulse.Pulse[P], DefaultQueueSize)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.registry != nil {
		core := c.registry.Core()
		c.metrics = &instruments{
			accepted:         core.PulsesAccepted.WithLabelValues(c.name),
			delivered:        core.PulsesDelivered.WithLabelValues(c.name),
			dropped:          core.PulsesDropped.WithLabelValues(c.name),
			deliveryDuration: core.DeliveryDuration.WithLabelValues(c.name),
		}
	}

	go c.consume()
	return c
}

// ID returns the channel's process-unique identifier.
func (c *Channel[P]) ID() string {
	return c.id
}

// Name returns the channel's diagnostic name.
func (c *Channel[P]) Name() string {
	return c.name
}

// Send schedules asynchronous delivery of the pulse to the bound handler.
// It returns without waiting for the handler to run. The pulse is
// delivered at most once: nil means it was accepted in FIFO position,
// errors.ErrQueueFull means it was dropped, and errors.ErrChannelClosed
// means the channel no longer accepts pulses.
func (c *Channel[P]) Send(p pulse.Pulse[P]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.dropped.Add(1)
		return errors.ErrChannelClosed
	}

	select {
	case c.queue <- p:
		c.accepted.Add(1)
		if c.metrics != nil {
			c.metrics.accepted.Inc()
		}
		return nil
	default:
		c.dropped.Add(1)
		if c.metrics != nil {
			c.metrics.dropped.Inc()
		}
		c.logger.Warn("pulse dropped, queue full",
			"channel", c.name,
			"pulse", p.ID())
		return errors.ErrQueueFull
	}
}

// Close stops intake. Already-accepted pulses are still drained to the
// handler before the consumer goroutine exits; Close does not wait for
// that; observe Done to synchronize with the drain. A second Close
// returns errors.ErrChannelClosed.
func (c *Channel[P]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrChannelClosed
	}
	c.closed = true
	close(c.queue)
	return nil
}

// Done is closed once the consumer goroutine has delivered every accepted
// pulse after Close.
func (c *Channel[P]) Done() <-chan struct{} {
	return c.done
}

// Stats returns a snapshot of the channel's delivery counters.
func (c *Channel[P]) Stats() Stats {
	return Stats{
		Accepted:   c.accepted.Load(),
		Delivered:  c.delivered.Load(),
		Dropped:    c.dropped.Load(),
		QueueDepth: len(c.queue),
	}
}

// consume drains the queue, invoking the handler once per pulse in FIFO
// order. It exits when Close has been called and the queue is empty.
func (c *Channel[P]) consume() {
	defer close(c.done)
	for p := range c.queue {
		c.deliver(p)
	}
}

// deliver invokes the handler for one pulse, recovering panics so a
// misbehaving handler cannot stop the delivery loop.
func (c *Channel[P]) deliver(p pulse.Pulse[P]) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("handler panic recovered",
				"channel", c.name,
				"pulse", p.ID(),
				"panic", r)
		}
		c.delivered.Add(1)
		if c.metrics != nil {
			c.metrics.delivered.Inc()
			c.metrics.deliveryDuration.Observe(time.Since(start).Seconds())
		}
	}()
	c.handler(p)
}
