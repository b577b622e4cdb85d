// Package obsidian provides a small, typed, in-process message-passing
// substrate built from three pieces: an immutable envelope, a fire-and-forget
// delivery primitive, and a lifecycle-aware bidirectional stream.
//
// # Architecture
//
// Obsidian is deliberately layered, leaves first:
//
//	┌─────────────────────────────────────┐
//	│             Stream                  │  Release protocol,
//	│   (send, release, notice fan-out)   │  at-most-once semantics
//	└─────────────────────────────────────┘
//	           ↓ composes
//	┌─────────────────────────────────────┐
//	│             Channel                 │  Handler-bound, FIFO,
//	│    (asynchronous delivery sink)     │  asynchronous delivery
//	└─────────────────────────────────────┘
//	           ↓ carries
//	┌─────────────────────────────────────┐
//	│              Pulse                  │  Immutable envelope with
//	│     (payload + routing metadata)    │  identity and causal trace
//	└─────────────────────────────────────┘
//
// Layer responsibilities:
//
//   - pulse: immutable envelopes. A Pulse carries a typed payload plus
//     Metadata (trace, source, echoes, priority, tags). Updates never
//     mutate; they return derived copies that keep identity and timestamp.
//   - channel: the delivery primitive. A Channel binds exactly one handler
//     and invokes it asynchronously, in FIFO order, at most once per
//     accepted pulse. Senders never wait for the handler.
//   - stream: the stateful composition. A Stream owns a data channel and up
//     to two release-notice channels, guarantees that exactly one release
//     succeeds under concurrent callers, and fans release notices out to
//     both endpoints before tearing its state down.
//
// Obsidian MUST NOT contain:
//
//   - Durable messaging concerns (persistence, acknowledgment, retry)
//   - Back-pressure or flow-control protocols between endpoints
//   - Wire formats or network transports
//
// It is a best-effort, in-process notification layer. Callers that need
// durability or delivery guarantees should layer them on top.
//
// # Error Handling
//
// Failures are returned as values, never raised. The single domain failure
// is errors.ErrReleased: an operation reached a Stream that already
// completed its release transition. Callers branch with errors.Is.
//
// # Quick Start
//
//	st := stream.New(func(p pulse.Pulse[Telemetry]) {
//	    process(p.Data)
//	})
//
//	if err := st.Send(pulse.New(reading)); err != nil {
//	    // stream already released
//	}
//
//	st.Release()
package obsidian
