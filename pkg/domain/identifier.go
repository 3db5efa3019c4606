package domain

import "github.com/google/uuid"

// EntityID identifies an entity. It supports two origins: a natural
// identifier supplied by the caller, or a generated UUID. Equality compares
// the primitive identifier only, whatever its origin; identity never
// involves the structural engines.
type EntityID struct {
	id        string
	generated bool
}

// NewEntityID returns a generated UUID identifier.
func NewEntityID() EntityID {
	return EntityID{id: uuid.NewString(), generated: true}
}

// EntityIDFrom returns an identifier wrapping a natural key.
func EntityIDFrom(id string) EntityID {
	return EntityID{id: id}
}

// String returns the identifier text.
func (e EntityID) String() string { return e.id }

// Generated reports whether the identifier was produced by NewEntityID.
func (e EntityID) Generated() bool { return e.generated }

// IsZero reports whether the identifier is empty.
func (e EntityID) IsZero() bool { return e.id == "" }

// Equals compares identifiers by their primitive value.
func (e EntityID) Equals(other EntityID) bool {
	return e.id == other.id
}
