// Package errors provides standardized error handling for Obsidian.
// It defines the sentinel errors the substrate can return and helper
// functions for consistent error wrapping across packages.
package errors

import (
	"errors"
	"fmt"
)

// Standard error variables for the substrate's terminal conditions.
var (
	// Stream lifecycle errors
	ErrReleased = errors.New("stream already released")

	// Channel lifecycle errors
	ErrChannelClosed = errors.New("channel closed")
	ErrQueueFull     = errors.New("channel queue full")

	// Construction errors
	ErrNilHandler = errors.New("handler cannot be nil")
)

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// IsReleased reports whether err indicates an operation reached a Stream
// that already completed its release transition. This is the substrate's
// single domain failure: callers are expected to branch on it rather than
// treat it as exceptional.
func IsReleased(err error) bool {
	return errors.Is(err, ErrReleased)
}

// IsClosed reports whether err indicates a Channel that no longer accepts
// pulses, either because it was closed directly or torn down by a Stream
// release.
func IsClosed(err error) bool {
	return errors.Is(err, ErrChannelClosed)
}

// Is re-exports the standard library's errors.Is so callers of this
// package do not need a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports the standard library's errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New re-exports the standard library's errors.New.
func New(text string) error {
	return errors.New(text)
}
