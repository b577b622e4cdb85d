package stream

// Released is the payload carried by release-notice pulses. It names the
// stream that completed its release transition; nothing else about the
// stream survives to be reported.
type Released struct {
	// StreamID is the identifier of the stream that was released.
	StreamID string
}

// ID returns the released stream's identifier, satisfying
// pulse.Identifiable so the signal can ride a standard envelope.
func (r Released) ID() string {
	return r.StreamID
}
