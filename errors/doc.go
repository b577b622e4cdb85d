// Package errors provides standardized error handling patterns for Obsidian.
//
// # Overview
//
// Obsidian's error surface is deliberately small. The substrate is
// best-effort and in-process: there are no transport failures, storage
// failures, or retry decisions to classify. What remains are terminal
// lifecycle conditions, expressed as sentinel errors that integrate with
// Go's standard errors.Is and errors.As chains.
//
// # Quick Start
//
// Branch on the domain sentinel:
//
//	if err := st.Send(p); errors.IsReleased(err) {
//	    // the stream was released; construct a new one if needed
//	}
//
// Wrap errors with component context when crossing package boundaries:
//
//	return errors.Wrap(err, "Channel", "Send", "pulse delivery")
//
// # Design
//
// Attempting to use a released Stream is a normal, expected outcome, not an
// exceptional one. Failures are therefore returned as plain values; nothing
// in this module panics as control flow, and no error here implies a retry
// is worthwhile.
package errors
