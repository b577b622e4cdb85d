package stream

import (
	"log/slog"

	"github.com/beeauvin/obsidian/metric"
	"github.com/beeauvin/obsidian/pulse"
)

// Option configures stream construction.
type Option[P pulse.Identifiable] func(*Stream[P])

// WithSourceReleased adds a notice channel for the source endpoint; the
// handler receives exactly one Released pulse when the stream releases.
func WithSourceReleased[P pulse.Identifiable](handler NoticeHandler) Option[P] {
	return func(s *Stream[P]) {
		s.sourceReleasedHandler = handler
	}
}

// WithAnchorReleased adds a notice channel for the anchor endpoint; the
// handler receives exactly one Released pulse when the stream releases.
func WithAnchorReleased[P pulse.Identifiable](handler NoticeHandler) Option[P] {
	return func(s *Stream[P]) {
		s.anchorReleasedHandler = handler
	}
}

// WithName sets the stream's diagnostic name. The stream's channels derive
// their names from it. Defaults to "stream-" plus a short identifier
// prefix.
func WithName[P pulse.Identifiable](name string) Option[P] {
	return func(s *Stream[P]) {
		if name != "" {
			s.name = name
		}
	}
}

// WithQueueSize sets the data channel's queue capacity.
func WithQueueSize[P pulse.Identifiable](size int) Option[P] {
	return func(s *Stream[P]) {
		s.queueSize = size
	}
}

// WithLogger sets the structured logger for the stream and its channels.
// Defaults to slog.Default.
func WithLogger[P pulse.Identifiable](logger *slog.Logger) Option[P] {
	return func(s *Stream[P]) {
		s.logger = logger
	}
}

// WithMetrics wires the stream and its channels to a metrics registry.
func WithMetrics[P pulse.Identifiable](registry *metric.Registry) Option[P] {
	return func(s *Stream[P]) {
		s.registry = registry
	}
}
