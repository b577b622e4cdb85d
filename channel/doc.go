// Package channel implements Obsidian's fire-and-forget delivery primitive.
//
// # Overview
//
// A Channel binds exactly one handler function and invokes it
// asynchronously with each accepted pulse. Delivery is FIFO per channel
// instance and at-most-once per accepted pulse; senders never wait for the
// handler to run. A single consumer goroutine drains a bounded queue, so
// the handler observes pulses one at a time, in order, without its own
// locking.
//
// # Drop Policy
//
// "Drop pulses, never queue unbounded." When the queue is full, Send
// returns errors.ErrQueueFull and the pulse is dropped rather than
// blocking the sender or growing memory. Callers that care account for
// drops via Stats or the metrics wiring; callers that don't can ignore the
// return value, matching the substrate's best-effort contract.
//
// # Lifecycle
//
// Close stops intake, lets the consumer drain already-accepted pulses, and
// then stops it. Close does not wait for the drain; observe Done for that:
//
//	ch := channel.New(handle)
//	// ...
//	ch.Close()
//	<-ch.Done() // all accepted pulses delivered
//
// Handler panics are recovered, logged, and counted as deliveries: one
// misbehaving pulse must not tear down the delivery loop.
package channel
