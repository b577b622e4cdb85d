package pulse

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beeauvin/obsidian/pkg/timestamp"
)

// Pulse is the immutable message envelope. It pairs a typed payload with a
// process-unique identifier, a creation timestamp, and Metadata.
//
// Identity and timestamp are assigned once at construction and survive
// every derived copy: WithData and WithMeta replace payload or metadata but
// never the envelope's identity. Two derived copies are independent values
// with no backward link to each other beyond Metadata.Echoes.
type Pulse[P Identifiable] struct {
	id        string
	timestamp int64 // Unix milliseconds
	data      P
	meta      Metadata
}

// Option configures pulse construction.
type Option[P Identifiable] func(*Pulse[P])

// WithMeta sets the initial metadata instead of the default.
func WithMeta[P Identifiable](meta Metadata) Option[P] {
	return func(p *Pulse[P]) {
		p.meta = meta
	}
}

// New creates a pulse wrapping the given payload. The envelope receives a
// fresh identifier and the current time; metadata defaults to NewMetadata
// unless overridden with WithMeta. Construction cannot fail.
func New[P Identifiable](data P, opts ...Option[P]) Pulse[P] {
	p := Pulse[P]{
		id:        uuid.NewString(),
		timestamp: timestamp.Now(),
		data:      data,
		meta:      NewMetadata(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Echo derives a causally-linked pulse from an existing one. The derived
// pulse is a new logical event: it receives a fresh identifier and
// timestamp, but inherits the origin's metadata with Echoes set to
// reference the origin envelope, preserving the trace across the chain.
func Echo[Q Identifiable, P Identifiable](from Pulse[P], data Q) Pulse[Q] {
	return Pulse[Q]{
		id:        uuid.NewString(),
		timestamp: timestamp.Now(),
		data:      data,
		meta:      from.meta.WithEchoes(Reference{ID: from.id}),
	}
}

// ID returns the envelope's process-unique identifier.
func (p Pulse[P]) ID() string {
	return p.id
}

// Timestamp returns the envelope's creation time.
func (p Pulse[P]) Timestamp() time.Time {
	return timestamp.ToTime(p.timestamp)
}

// Data returns the payload.
func (p Pulse[P]) Data() P {
	return p.data
}

// Meta returns the metadata.
func (p Pulse[P]) Meta() Metadata {
	return p.meta
}

// WithData returns a copy of the pulse carrying the given payload. The
// identifier, timestamp, and metadata are retained from the receiver.
func (p Pulse[P]) WithData(data P) Pulse[P] {
	p.data = data
	return p
}

// WithMeta returns a copy of the pulse carrying the given metadata. The
// identifier, timestamp, and payload are retained from the receiver.
func (p Pulse[P]) WithMeta(meta Metadata) Pulse[P] {
	p.meta = meta
	return p
}

// String returns a short diagnostic representation.
func (p Pulse[P]) String() string {
	return fmt.Sprintf("pulse %s (%s)", p.id, timestamp.Format(p.timestamp))
}
