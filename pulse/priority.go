package pulse

// Priority is an advisory processing priority carried in pulse metadata.
// The substrate itself never reorders deliveries by priority; the value is
// a hint for consumers that maintain their own scheduling.
type Priority int

const (
	// PriorityLow marks pulses that can be deferred under load.
	PriorityLow Priority = iota
	// PriorityStandard is the default priority for new metadata.
	PriorityStandard
	// PriorityHigh marks pulses consumers should handle ahead of others.
	PriorityHigh
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityStandard:
		return "standard"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}
