package domain

// AggregateRoot is the base of aggregate entities: an Entity that records
// the domain events raised since the last pull.
type AggregateRoot struct {
	Entity
	events []Event
}

// NewAggregateRoot creates an aggregate root with the given identifier,
// generating one when the identifier is zero.
func NewAggregateRoot(id EntityID) *AggregateRoot {
	return &AggregateRoot{Entity: NewEntity(id)}
}

// Record appends an event to the pending list.
func (a *AggregateRoot) Record(ev Event) {
	a.events = append(a.events, ev)
}

// PendingEvents returns the number of recorded, not yet pulled events.
func (a *AggregateRoot) PendingEvents() int {
	return len(a.events)
}

// PullEvents returns the recorded events and clears the pending list.
func (a *AggregateRoot) PullEvents() []Event {
	out := a.events
	a.events = nil
	return out
}
