// Package pulse defines Obsidian's immutable message envelope.
//
// # Overview
//
// A Pulse wraps a typed payload with identity, a creation timestamp, and
// routing/diagnostic Metadata. Envelopes are values: nothing in this package
// mutates after construction. "Updates" are derived copies: WithData and
// WithMeta return a new Pulse that keeps the original's identity and
// timestamp, so a logical event stays recognizable across transformations.
//
// # Capabilities
//
// Payloads must satisfy Identifiable, the minimal identity capability:
//
//	type Telemetry struct {
//	    DeviceID string
//	    Reading  float64
//	}
//
//	func (t Telemetry) ID() string { return t.DeviceID }
//
// The remaining capability interfaces (Nameable, Describable, Representable)
// are optional; components implement them to participate in metadata
// references and diagnostics.
//
// # Causal Tracing
//
// Metadata carries two non-owning backward references: Source names the
// component that emitted the pulse, and Echoes names the pulse or component
// that caused it. Echo derives a new pulse from an existing one, keeping the
// trace identifier and recording the causal link:
//
//	alert := pulse.Echo(reading, Alert{RuleID: "over-temp"})
//	// alert.Meta().Trace() == reading.Meta().Trace()
//	// alert.Meta().Echoes() references reading
//
// Neither reference participates in lifetime management; they are plain
// identifier pairs for diagnostics and correlation only.
package pulse
