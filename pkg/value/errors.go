package value

import "errors"

// Sentinel errors returned by container mutators.
var (
	// ErrFrozen is returned when a mutator is called on a frozen container.
	ErrFrozen = errors.New("value: container is frozen")

	// ErrIndexRange is returned when a list index is out of range.
	ErrIndexRange = errors.New("value: index out of range")
)

// IsFrozenError reports whether err stems from mutating a frozen container.
func IsFrozenError(err error) bool {
	return errors.Is(err, ErrFrozen)
}
