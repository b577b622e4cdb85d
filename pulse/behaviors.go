package pulse

// Capability Interfaces
//
// This file defines the pure structural capability interfaces that payloads
// and components can implement. The substrate discovers these capabilities
// through type assertions and generic constraints; none of them imply
// ownership or lifecycle participation.

// Identifiable exposes a stable unique identifier. It is the minimal
// capability every pulse payload must satisfy: the identifier lets
// consumers deduplicate, correlate, and reference payloads without
// knowing their concrete type.
type Identifiable interface {
	// ID returns a stable unique identifier for this value.
	// The identifier must not change across the value's lifetime.
	ID() string
}

// Nameable exposes a human-readable name, used for diagnostics and
// metadata references. Names are not required to be unique.
type Nameable interface {
	// Name returns a short human-readable name.
	Name() string
}

// Describable exposes a longer human-readable description.
type Describable interface {
	// Description returns human-readable documentation for this value.
	Description() string
}

// Representable combines identity and naming. Components that can appear
// as a Metadata source reference implement this interface.
type Representable interface {
	Identifiable
	Nameable
}

// Reference is a lightweight, non-owning identity/name pair. It records
// where a pulse came from (Metadata.Source) or what caused it
// (Metadata.Echoes) without holding the referenced value alive.
type Reference struct {
	ID   string
	Name string
}

// RefTo builds a Reference from any Representable component.
func RefTo(r Representable) Reference {
	return Reference{ID: r.ID(), Name: r.Name()}
}
