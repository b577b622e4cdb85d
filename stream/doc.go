// Package stream implements Obsidian's bidirectional, lifecycle-aware
// stream and its release protocol. This is the substrate's only stateful
// component.
//
// # Composition
//
// A Stream owns up to three channels: a data channel (always present while
// active) and two optional release-notice channels, one per endpoint. The
// endpoint that constructed the stream is its source; the endpoint it was
// handed to is its anchor. Either side may release; when one does, both
// configured notice channels receive exactly one Released pulse before the
// stream tears its state down.
//
// # State Machine
//
// A stream has exactly two states and one transition:
//
//	Active ──release──▶ Released (terminal)
//
// The active state holds all three channel handles in a single struct;
// releasing swaps that struct out atomically under the stream's mutex, so
// "all channels absent" is a structural property of the released state, not
// a convention across nullable fields.
//
// # Release Semantics
//
// Release is at-most-once under arbitrary concurrency: of N racing calls,
// exactly one returns nil and performs the notice fan-out; every other call
// returns errors.ErrReleased. Send on a released stream likewise returns
// errors.ErrReleased without any delivery attempt. Both outcomes are
// ordinary results callers branch on, not exceptional conditions.
package stream
