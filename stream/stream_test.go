package stream

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beeauvin/obsidian/errors"
	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
)

// reading is a minimal Identifiable payload for stream tests.
type reading struct {
	Sensor string
	Value  float64
}

func (r reading) ID() string { return r.Sensor }

// dataCollector accumulates delivered data pulses and signals arrivals.
type dataCollector struct {
	mu       sync.Mutex
	received []pulse.Pulse[reading]
	arrived  chan struct{}
}

func newDataCollector() *dataCollector {
	return &dataCollector{arrived: make(chan struct{}, 1024)}
}

func (c *dataCollector) handle(p pulse.Pulse[reading]) {
	c.mu.Lock()
	c.received = append(c.received, p)
	c.mu.Unlock()
	c.arrived <- struct{}{}
}

func (c *dataCollector) wait(t *testing.T, n int) []pulse.Pulse[reading] {
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
	out := make([]pulse.Pulse[reading], len(c.received))
	copy(out, c.received)
	return out
}

func (c *dataCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.received)
}

// noticeCollector accumulates release notices and signals arrivals.
type noticeCollector struct {
	mu       sync.Mutex
	received []pulse.Pulse[Released]
	arrived  chan struct{}
}

func newNoticeCollector() *noticeCollector {
	return &noticeCollector{arrived: make(chan struct{}, 8)}
}

func (c *noticeCollector) handle(p pulse.Pulse[Released]) {
	c.mu.Lock()
	c.received = append(c.received, p)
	c.mu.Unlock()
	c.arrived <- struct{}{}
}

func (c *noticeCollector) wait(t *testing.T) pulse.Pulse[Released] {
	t.Helper()
	select {
	case <-c.arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for release notice")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.received[len(c.received)-1]
}

func (c *noticeCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.received)
}

func TestNew(t *testing.T) {
	s := New(newDataCollector().handle)
	defer s.Release()

	assert.False(t, s.Released())
	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err)
	assert.NotEmpty(t, s.Name())
}

func TestNew_NilHandlerPanics(t *testing.T) {
	assert.Panics(t, func() {
		New[reading](nil)
	})
}

func TestStream_SendAndRelease(t *testing.T) {
	// Data-handler-only scenario: send succeeds, release succeeds, then
	// both operations report released.
	col := newDataCollector()
	s := New(col.handle)

	a := pulse.New(reading{Sensor: "a", Value: 1})
	require.NoError(t, s.Send(a))

	got := col.wait(t, 1)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID(), got[0].ID())

	require.NoError(t, s.Release())
	assert.True(t, s.Released())

	b := pulse.New(reading{Sensor: "b", Value: 2})
	assert.ErrorIs(t, s.Send(b), errors.ErrReleased)
	assert.ErrorIs(t, s.Release(), errors.ErrReleased)

	// The rejected pulse never reaches the handler
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, col.count())
}

func TestStream_ReleaseNotifiesBothEndpoints(t *testing.T) {
	source := newNoticeCollector()
	anchor := newNoticeCollector()
	s := New(newDataCollector().handle,
		WithSourceReleased[reading](source.handle),
		WithAnchorReleased[reading](anchor.handle))

	require.NoError(t, s.Release())

	sourceNotice := source.wait(t)
	anchorNotice := anchor.wait(t)

	// Each endpoint hears exactly once, with the stream's identity
	assert.Equal(t, s.ID(), sourceNotice.Data().StreamID)
	assert.Equal(t, s.ID(), anchorNotice.Data().StreamID)

	// The notice is marked as self-originated lifecycle traffic
	ref, ok := sourceNotice.Meta().Source()
	require.True(t, ok)
	assert.Equal(t, s.ID(), ref.ID)
	assert.Equal(t, s.Name(), ref.Name)

	// Repeated release attempts deliver nothing further
	assert.ErrorIs(t, s.Release(), errors.ErrReleased)
	assert.ErrorIs(t, s.Release(), errors.ErrReleased)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, source.count())
	assert.Equal(t, 1, anchor.count())
}

func TestStream_ReleaseSourceOnly(t *testing.T) {
	source := newNoticeCollector()
	s := New(newDataCollector().handle,
		WithSourceReleased[reading](source.handle))

	require.NoError(t, s.Release())

	notice := source.wait(t)
	assert.Equal(t, s.ID(), notice.Data().StreamID)
}

func TestStream_ReleaseAnchorOnly(t *testing.T) {
	anchor := newNoticeCollector()
	s := New(newDataCollector().handle,
		WithAnchorReleased[reading](anchor.handle))

	require.NoError(t, s.Release())

	notice := anchor.wait(t)
	assert.Equal(t, s.ID(), notice.Data().StreamID)
}

func TestStream_ReleaseWithoutNoticeChannels(t *testing.T) {
	// Zero notice handlers: release still completes cleanly
	s := New(newDataCollector().handle)

	assert.NoError(t, s.Release())
	assert.True(t, s.Released())
}

func TestStream_IndependentInstances(t *testing.T) {
	// Releasing one stream leaves others untouched
	colA := newDataCollector()
	colB := newDataCollector()
	a := New(colA.handle)
	b := New(colB.handle)

	require.NoError(t, a.Release())

	assert.True(t, a.Released())
	assert.False(t, b.Released())
	require.NoError(t, b.Send(pulse.New(reading{Sensor: "s"})))
	colB.wait(t, 1)
	require.NoError(t, b.Release())
}

func TestStream_WithName(t *testing.T) {
	s := New(newDataCollector().handle, WithName[reading]("telemetry"))
	defer s.Release()

	assert.Equal(t, "telemetry", s.Name())
}

func TestStream_Representable(t *testing.T) {
	s := New(newDataCollector().handle)
	defer s.Release()

	ref := pulse.RefTo(s)
	assert.Equal(t, s.ID(), ref.ID)
	assert.Equal(t, s.Name(), ref.Name)
}

func TestStream_WithMetrics(t *testing.T) {
	reg := metric.NewRegistry()
	s := New(newDataCollector().handle,
		WithName[reading]("metered"),
		WithSourceReleased[reading](newNoticeCollector().handle),
		WithMetrics[reading](reg))

	require.NoError(t, s.Release())

	families, err := reg.PrometheusRegistry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[f.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[f.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, float64(1), values["obsidian_stream_released_total"])
	assert.Equal(t, float64(0), values["obsidian_stream_active"])
	assert.Equal(t, float64(1), values["obsidian_stream_notices_sent_total"])
}

func TestReleased_Identifiable(t *testing.T) {
	r := Released{StreamID: "stream-42"}
	assert.Equal(t, "stream-42", r.ID())

	var _ pulse.Identifiable = r
}
