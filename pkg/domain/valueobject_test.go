package domain

import (
	"errors"
	"testing"

	"github.com/openfacet/openfacet/pkg/value"
)

func TestValueObjectSnapshotsInput(t *testing.T) {
	props := value.NewRecord()
	props.Set("name", value.String("alice"))

	vo := NewValueObject(props)

	// Later mutation of the input must not be visible through the object.
	props.Set("name", value.String("bob"))

	got, ok := vo.Props().(*value.Record).Get("name")
	if !ok {
		t.Fatal("Expected 'name' field in snapshot")
	}
	if got != value.String("alice") {
		t.Errorf("Expected snapshot to keep 'alice', got %v", got)
	}
}

func TestValueObjectIsFrozen(t *testing.T) {
	props := value.NewRecord()
	props.Set("count", value.Number(1))

	vo := NewValueObject(props)

	err := vo.Props().(*value.Record).Set("count", value.Number(2))
	if !errors.Is(err, value.ErrFrozen) {
		t.Errorf("Expected ErrFrozen, got %v", err)
	}
}

func TestValueObjectEquals(t *testing.T) {
	a := value.NewRecord()
	a.Set("x", value.Number(1))
	b := value.NewRecord()
	b.Set("x", value.Number(1))
	c := value.NewRecord()
	c.Set("x", value.Number(2))

	if !NewValueObject(a).Equals(NewValueObject(b)) {
		t.Error("Expected structurally equal value objects to be equal")
	}
	if NewValueObject(a).Equals(NewValueObject(c)) {
		t.Error("Expected structurally different value objects to be unequal")
	}
}

func TestValueObjectCyclicProps(t *testing.T) {
	props := value.NewRecord()
	props.Set("self", props)

	vo := NewValueObject(props)

	inner, ok := vo.Props().(*value.Record).Get("self")
	if !ok {
		t.Fatal("Expected 'self' field")
	}
	if inner != vo.Props() {
		t.Error("Expected cycle to be preserved within the snapshot")
	}
	if inner == value.Value(props) {
		t.Error("Expected snapshot to be independent of the input graph")
	}
}

func TestValueObjectString(t *testing.T) {
	props := value.NewRecord()
	props.Set("kind", value.String("point"))

	got := NewValueObject(props).String()
	want := `{"kind":"point"}`
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
