package domain

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event raised by an aggregate.
type Event interface {
	// EventName is the stable, registry-visible name of the event type.
	EventName() string

	// OccurredAt is when the event happened.
	OccurredAt() time.Time
}

// Envelope is the serialized form of an event: stable metadata plus the
// JSON-encoded payload.
type Envelope struct {
	// ID is a generated envelope identifier.
	ID string `json:"id"`

	// Name is the event type name used to select a decoder.
	Name string `json:"name"`

	// AggregateID identifies the aggregate that raised the event.
	AggregateID string `json:"aggregate_id"`

	// OccurredAt is when the event happened.
	OccurredAt time.Time `json:"occurred_at"`

	// Payload is the JSON-encoded event.
	Payload json.RawMessage `json:"payload"`
}

// Decoder rebuilds an event from its JSON payload.
type Decoder func(payload json.RawMessage) (Event, error)

// Codec encodes events into envelopes and decodes them back through a
// name-indexed decoder registry.
type Codec struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

// NewCodec returns an empty codec.
func NewCodec() *Codec {
	return &Codec{decoders: make(map[string]Decoder)}
}

// Register installs the decoder for an event name. Registering a name
// twice replaces the earlier decoder.
func (c *Codec) Register(name string, dec Decoder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoders[name] = dec
}

// Encode wraps an event in an envelope.
func (c *Codec) Encode(aggregateID EntityID, ev Event) (*Envelope, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %s: %w", ev.EventName(), err)
	}
	return &Envelope{
		ID:          uuid.NewString(),
		Name:        ev.EventName(),
		AggregateID: aggregateID.String(),
		OccurredAt:  ev.OccurredAt(),
		Payload:     payload,
	}, nil
}

// Decode rebuilds the event carried by an envelope. It fails with
// ErrUnknownEvent when no decoder is registered for the envelope's name.
func (c *Codec) Decode(env *Envelope) (Event, error) {
	c.mu.RLock()
	dec, ok := c.decoders[env.Name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, env.Name)
	}
	ev, err := dec(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode event %s: %w", env.Name, err)
	}
	return ev, nil
}
