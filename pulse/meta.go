package pulse

import "github.com/google/uuid"

// Metadata carries the routing and diagnostic context of a pulse. It is an
// immutable value: every With* method returns a copy with exactly one field
// replaced, leaving the receiver untouched. This makes metadata safe to
// share between envelopes and goroutines without coordination.
type Metadata struct {
	debug    bool
	trace    string
	source   *Reference
	echoes   *Reference
	priority Priority
	tags     Tags
}

// NewMetadata creates metadata with a fresh trace identifier, standard
// priority, no references, and an empty tag set.
func NewMetadata() Metadata {
	return Metadata{
		trace:    uuid.NewString(),
		priority: PriorityStandard,
	}
}

// Debug reports whether the diagnostic flag is set.
func (m Metadata) Debug() bool {
	return m.debug
}

// Trace returns the identifier correlating related pulses across a causal
// chain. Pulses derived via Echo share their origin's trace.
func (m Metadata) Trace() string {
	return m.trace
}

// Source returns the reference to the originating component, if any.
func (m Metadata) Source() (Reference, bool) {
	if m.source == nil {
		return Reference{}, false
	}
	return *m.source, true
}

// Echoes returns the reference to the pulse or component that caused this
// one, if any.
func (m Metadata) Echoes() (Reference, bool) {
	if m.echoes == nil {
		return Reference{}, false
	}
	return *m.echoes, true
}

// Priority returns the advisory processing priority.
func (m Metadata) Priority() Priority {
	return m.priority
}

// Tags returns the label set.
func (m Metadata) Tags() Tags {
	return m.tags
}

// WithDebug returns a copy with the diagnostic flag replaced.
func (m Metadata) WithDebug(debug bool) Metadata {
	m.debug = debug
	return m
}

// WithTrace returns a copy with the trace identifier replaced.
func (m Metadata) WithTrace(trace string) Metadata {
	m.trace = trace
	return m
}

// WithSource returns a copy with the source reference replaced.
func (m Metadata) WithSource(ref Reference) Metadata {
	m.source = &ref
	return m
}

// WithEchoes returns a copy with the echoes reference replaced.
func (m Metadata) WithEchoes(ref Reference) Metadata {
	m.echoes = &ref
	return m
}

// WithPriority returns a copy with the priority replaced.
func (m Metadata) WithPriority(p Priority) Metadata {
	m.priority = p
	return m
}

// WithTags returns a copy with the tag set replaced.
func (m Metadata) WithTags(tags Tags) Metadata {
	m.tags = tags
	return m
}
