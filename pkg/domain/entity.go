package domain

// Entity is the base of identity-bearing domain objects. Two entities are
// the same entity exactly when their identifiers are equal; their other
// state plays no part in the comparison.
type Entity struct {
	id EntityID
}

// NewEntity creates an entity with the given identifier, generating one
// when the identifier is zero.
func NewEntity(id EntityID) Entity {
	if id.IsZero() {
		id = NewEntityID()
	}
	return Entity{id: id}
}

// ID returns the entity identifier.
func (e Entity) ID() EntityID { return e.id }

// Equals reports identity equality.
func (e Entity) Equals(other Entity) bool {
	return e.id.Equals(other.id)
}
