// Package domain provides the building blocks for identity- and
// value-based domain modeling on top of the structural value engine.
//
// Entities carry an EntityID and compare by identity alone: two entities
// with the same identifier are the same entity no matter what the rest of
// their state looks like. Identifiers come in two flavors, natural keys
// wrapped with EntityIDFrom and generated UUIDs from NewEntityID, and
// both compare by their primitive text.
//
// ValueObject is the opposite discipline: it has no identity at all and
// compares structurally. Its constructor takes ownership of the caller's
// property graph by cloning and freezing it in one step, so a value object
// can never observe later mutations of the input and can never be mutated
// itself.
//
// AggregateRoot extends Entity with domain event recording, and Codec
// moves events in and out of JSON envelopes through a name-indexed
// decoder registry.
package domain
