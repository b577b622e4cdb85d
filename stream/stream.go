package stream

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/beeauvin/obsidian/channel"
	"github.com/beeauvin/obsidian/errors"
	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
)

// NoticeHandler receives the release-notice pulse when a stream releases.
type NoticeHandler = channel.Handler[Released]

// Stream composes a data channel with up to two release-notice channels
// and guards them with a two-state lifecycle. All operations on one
// instance serialize through a single mutex; operations across instances
// are fully concurrent.
type Stream[P pulse.Identifiable] struct {
	id   string
	name string

	mu     sync.Mutex
	active *channelSet[P]

	logger   *slog.Logger
	registry *metric.Registry

	// Construction-time configuration, consumed by New.
	queueSize             int
	sourceReleasedHandler NoticeHandler
	anchorReleasedHandler NoticeHandler
}

// channelSet holds the three channel handles of an active stream. The
// whole set is swapped to nil on release, so no observer can see a
// partially-released stream.
type channelSet[P pulse.Identifiable] struct {
	data           *channel.Channel[P]
	sourceReleased *channel.Channel[Released]
	anchorReleased *channel.Channel[Released]
}

// New creates an active stream whose data channel is bound to handler.
// Release-notice channels exist only when the corresponding handler is
// supplied via WithSourceReleased or WithAnchorReleased, since most streams are
// one-directional data pipes and allocate no notice infrastructure.
// Construction always succeeds; a nil data handler panics.
func New[P pulse.Identifiable](handler channel.Handler[P], opts ...Option[P]) *Stream[P] {
	if handler == nil {
		panic(errors.ErrNilHandler)
	}

	id := uuid.NewString()
	s := &Stream[P]{
		id:   id,
		name: "stream-" + id[:8],
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.active = &channelSet[P]{
		data: channel.New(handler,
			channel.WithName[P](s.name+"-data"),
			channel.WithQueueSize[P](s.queueSize),
			channel.WithLogger[P](s.logger),
			channel.WithMetrics[P](s.registry)),
	}
	if s.sourceReleasedHandler != nil {
		s.active.sourceReleased = s.noticeChannel("source-released", s.sourceReleasedHandler)
	}
	if s.anchorReleasedHandler != nil {
		s.active.anchorReleased = s.noticeChannel("anchor-released", s.anchorReleasedHandler)
	}

	if s.registry != nil {
		s.registry.Core().StreamsActive.Inc()
	}
	return s
}

func (s *Stream[P]) noticeChannel(suffix string, handler NoticeHandler) *channel.Channel[Released] {
	return channel.New(handler,
		channel.WithName[Released](s.name+"-"+suffix),
		channel.WithLogger[Released](s.logger),
		channel.WithMetrics[Released](s.registry))
}

// ID returns the stream's process-unique identifier.
func (s *Stream[P]) ID() string {
	return s.id
}

// Name returns the stream's diagnostic name.
func (s *Stream[P]) Name() string {
	return s.name
}

// Description returns human-readable documentation for diagnostics,
// satisfying pulse.Describable.
func (s *Stream[P]) Description() string {
	return "bidirectional pulse stream " + s.name
}

// Released reports whether the stream has completed its release
// transition.
func (s *Stream[P]) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active == nil
}

// Send forwards the pulse to the data channel, fire-and-forget: it returns
// once delivery is scheduled, never waiting for the consumer handler. On a
// released stream it returns errors.ErrReleased and nothing is forwarded.
func (s *Stream[P]) Send(p pulse.Pulse[P]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return errors.ErrReleased
	}

	// Queue-full drops are the channel's concern; from the stream's
	// view the delivery attempt happened and the send succeeded.
	_ = s.active.data.Send(p)
	return nil
}

// Release transitions the stream to its terminal state. The first call
// constructs one Released pulse, delivers it to each configured notice
// channel, closes all channels, and clears them as a single atomic step.
// Every other call, sequential or concurrent, returns errors.ErrReleased
// and delivers nothing.
func (s *Stream[P]) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return errors.ErrReleased
	}

	// Source metadata marks this as a self-originated lifecycle notice,
	// distinguishable from ordinary data traffic.
	notice := pulse.New(Released{StreamID: s.id},
		pulse.WithMeta[Released](pulse.NewMetadata().WithSource(pulse.RefTo(s))))

	// Notices go out before the data channel comes down, so a racing
	// Send either fully precedes or fully follows the transition.
	if ch := s.active.sourceReleased; ch != nil {
		_ = ch.Send(notice)
		_ = ch.Close()
		if s.registry != nil {
			s.registry.Core().NoticesSent.WithLabelValues("source").Inc()
		}
	}
	if ch := s.active.anchorReleased; ch != nil {
		_ = ch.Send(notice)
		_ = ch.Close()
		if s.registry != nil {
			s.registry.Core().NoticesSent.WithLabelValues("anchor").Inc()
		}
	}
	_ = s.active.data.Close()
	s.active = nil

	if s.registry != nil {
		s.registry.Core().StreamsActive.Dec()
		s.registry.Core().StreamsReleased.Inc()
	}
	s.logger.Debug("stream released", "stream", s.name, "id", s.id)
	return nil
}
