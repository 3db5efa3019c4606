// Package result provides a two-variant container for the outcome of a
// fallible computation. A Result is either Ok, carrying a value, or Fail,
// carrying an error; it never carries both. It is a plain value type:
// returning one from a function and switching on IsOk reads the same as
// the usual (T, error) pair, but lets the outcome travel through channels,
// slices, and maps as a single item.
package result

// Result holds either a value or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed result carrying err.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From wraps a conventional (value, error) pair: Fail when err is non-nil,
// Ok otherwise.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// IsOk reports whether the result carries a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Value returns the carried value. It is the zero value of T for a failed
// result.
func (r Result[T]) Value() T { return r.value }

// Err returns the carried error, nil for a successful result.
func (r Result[T]) Err() error { return r.err }

// ValueOr returns the carried value, or fallback when the result failed.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Unpack returns the conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

// Map applies fn to a successful result's value, passing a failure through
// untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

// Then chains a fallible step onto a successful result, passing a failure
// through untouched.
func Then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return fn(r.value)
}
