package channel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beeauvin/obsidian/errors"
	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
)

// testEvent is a minimal Identifiable payload for delivery tests.
type testEvent struct {
	Key string
	Seq int
}

func (e testEvent) ID() string { return e.Key }

// collector accumulates delivered pulses and signals arrivals.
type collector struct {
	mu       sync.Mutex
	received []pulse.Pulse[testEvent]
	arrived  chan struct{}
}

func newCollector() *collector {
	return &collector{arrived: make(chan struct{}, 128)}
}

func (c *collector) handle(p pulse.Pulse[testEvent]) {
	c.mu.Lock()
	c.received = append(c.received, p)
	c.mu.Unlock()
	c.arrived <- struct{}{}
}

func (c *collector) wait(t *testing.T, n int) []pulse.Pulse[testEvent] {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-c.arrived:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]pulse.Pulse[testEvent], len(c.received))
	copy(out, c.received)
	return out
}

func TestNew_NilHandlerPanics(t *testing.T) {
	assert.Panics(t, func() {
		New[testEvent](nil)
	})
}

func TestChannel_DeliversOnce(t *testing.T) {
	col := newCollector()
	ch := New(col.handle)
	defer ch.Close()

	p := pulse.New(testEvent{Key: "a"})
	require.NoError(t, ch.Send(p))

	got := col.wait(t, 1)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID(), got[0].ID())
	assert.Equal(t, p.Data(), got[0].Data())
}

func TestChannel_FIFOOrder(t *testing.T) {
	const n = 100
	col := newCollector()
	ch := New(col.handle)
	defer ch.Close()

	for i := 0; i < n; i++ {
		require.NoError(t, ch.Send(pulse.New(testEvent{Key: "k", Seq: i})))
	}

	got := col.wait(t, n)
	require.Len(t, got, n)
	for i, p := range got {
		assert.Equal(t, i, p.Data().Seq)
	}
}

func TestChannel_SendNeverWaitsForHandler(t *testing.T) {
	block := make(chan struct{})
	ch := New(func(pulse.Pulse[testEvent]) {
		<-block
	})
	defer close(block)
	defer ch.Close()

	start := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, ch.Send(pulse.New(testEvent{Key: "k", Seq: i})))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestChannel_DropsWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	ch := New(func(pulse.Pulse[testEvent]) {
		<-block
	}, WithQueueSize[testEvent](1))
	defer ch.Close()

	// First send may begin delivery immediately; fill the queue, then
	// keep sending until the full-queue drop surfaces.
	var dropErr error
	for i := 0; i < 10 && dropErr == nil; i++ {
		dropErr = ch.Send(pulse.New(testEvent{Key: "k", Seq: i}))
	}
	close(block)

	require.Error(t, dropErr)
	assert.ErrorIs(t, dropErr, errors.ErrQueueFull)
	assert.Positive(t, ch.Stats().Dropped)
}

func TestChannel_Close(t *testing.T) {
	col := newCollector()
	ch := New(col.handle)

	require.NoError(t, ch.Send(pulse.New(testEvent{Key: "before"})))
	require.NoError(t, ch.Close())

	// Accepted pulses drain even after close
	select {
	case <-ch.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain after close")
	}
	assert.Len(t, col.wait(t, 1), 1)

	// Intake is stopped
	err := ch.Send(pulse.New(testEvent{Key: "after"}))
	assert.ErrorIs(t, err, errors.ErrChannelClosed)

	// Second close reports closed
	assert.ErrorIs(t, ch.Close(), errors.ErrChannelClosed)
}

func TestChannel_HandlerPanicRecovered(t *testing.T) {
	col := newCollector()
	ch := New(func(p pulse.Pulse[testEvent]) {
		if p.Data().Key == "boom" {
			panic("handler exploded")
		}
		col.handle(p)
	})
	defer ch.Close()

	require.NoError(t, ch.Send(pulse.New(testEvent{Key: "boom"})))
	require.NoError(t, ch.Send(pulse.New(testEvent{Key: "fine"})))

	// Delivery continues past the panic
	got := col.wait(t, 1)
	assert.Equal(t, "fine", got[0].Data().Key)
	assert.Eventually(t, func() bool {
		return ch.Stats().Delivered == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestChannel_Stats(t *testing.T) {
	col := newCollector()
	ch := New(col.handle)
	defer ch.Close()

	require.NoError(t, ch.Send(pulse.New(testEvent{Key: "a"})))
	require.NoError(t, ch.Send(pulse.New(testEvent{Key: "b"})))
	col.wait(t, 2)

	assert.Equal(t, int64(2), ch.Stats().Accepted)
	assert.Equal(t, int64(0), ch.Stats().Dropped)
	assert.Eventually(t, func() bool {
		return ch.Stats().Delivered == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestChannel_WithName(t *testing.T) {
	ch := New(func(pulse.Pulse[testEvent]) {}, WithName[testEvent]("telemetry"))
	defer ch.Close()

	assert.Equal(t, "telemetry", ch.Name())
}

func TestChannel_WithMetrics(t *testing.T) {
	reg := metric.NewRegistry()
	col := newCollector()
	ch := New(col.handle,
		WithName[testEvent]("metered"),
		WithMetrics[testEvent](reg))
	defer ch.Close()

	require.NoError(t, ch.Send(pulse.New(testEvent{Key: "a"})))
	col.wait(t, 1)

	families, err := reg.PrometheusRegistry().Gather()
	require.NoError(t, err)

	var accepted float64
	for _, f := range families {
		if f.GetName() != "obsidian_channel_pulses_accepted_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			accepted += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), accepted)
}
