package domain

import "github.com/openfacet/openfacet/pkg/value"

// ValueObject holds an owned, immutable snapshot of its properties. The
// constructor clones and then freezes the caller's graph exactly once;
// afterwards neither the caller's later mutations nor the frozen snapshot
// can drift. Value objects compare structurally, not by reference.
type ValueObject struct {
	props value.Value
}

// NewValueObject snapshots props. The input graph may be cyclic; the
// snapshot is fully independent of it.
func NewValueObject(props value.Value) ValueObject {
	return ValueObject{props: value.Freeze(value.Clone(props))}
}

// Props returns the frozen property graph.
func (v ValueObject) Props() value.Value { return v.props }

// Equals reports structural equality of the property graphs.
func (v ValueObject) Equals(other ValueObject) bool {
	return value.Equal(v.props, other.props)
}

// String renders the properties for display.
func (v ValueObject) String() string {
	return value.Stringify(v.props)
}
