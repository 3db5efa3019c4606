package domain

import "testing"

func TestNewEntityID(t *testing.T) {
	id := NewEntityID()

	if id.IsZero() {
		t.Error("Expected generated identifier to be non-zero")
	}
	if !id.Generated() {
		t.Error("Expected Generated() to be true")
	}
	if id.String() == "" {
		t.Error("Expected non-empty identifier text")
	}
}

func TestNewEntityIDUnique(t *testing.T) {
	a := NewEntityID()
	b := NewEntityID()

	if a.Equals(b) {
		t.Errorf("Expected distinct generated identifiers, both were %q", a.String())
	}
}

func TestEntityIDFrom(t *testing.T) {
	id := EntityIDFrom("order-42")

	if id.Generated() {
		t.Error("Expected natural identifier to report Generated() false")
	}
	if id.String() != "order-42" {
		t.Errorf("Expected 'order-42', got %q", id.String())
	}
}

func TestEntityIDEquals(t *testing.T) {
	natural := EntityIDFrom("shared")
	generatedLooking := EntityID{id: "shared", generated: true}

	if !natural.Equals(generatedLooking) {
		t.Error("Expected equality to compare the primitive value only, not the origin")
	}
	if natural.Equals(EntityIDFrom("other")) {
		t.Error("Expected different identifiers to be unequal")
	}
}

func TestEntityIDZero(t *testing.T) {
	var id EntityID

	if !id.IsZero() {
		t.Error("Expected zero-value identifier to report IsZero() true")
	}
}
