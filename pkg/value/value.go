package value

import (
	"math"
	"regexp"
	"sort"
	"time"
)

// Kind classifies a Value into exactly one traversal category.
// Every engine operation dispatches on the Kind of the node it visits.
type Kind int

const (
	// KindNull is the absent-value scalar.
	KindNull Kind = iota

	// KindBool is a boolean scalar.
	KindBool

	// KindNumber is a float64 scalar, including NaN, ±Inf and -0.
	KindNumber

	// KindString is a string scalar.
	KindString

	// KindTime is a timestamp container (always copied, never frozen).
	KindTime

	// KindRegexp is a pattern+flags container (always copied, never frozen).
	KindRegexp

	// KindList is an ordered, index-addressed container.
	KindList

	// KindMap is an unordered container of key/value pairs where keys are
	// themselves values.
	KindMap

	// KindSet is an unordered membership container.
	KindSet

	// KindRecord is a string-keyed field container.
	KindRecord
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindRegexp:
		return "regexp"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Value is a node in a value graph. Scalar nodes are immutable named types
// shared freely between graphs; container nodes are pointers, so reference
// identity is well defined and graphs may be cyclic.
type Value interface {
	// Kind reports the traversal category of the node.
	Kind() Kind
}

// KindOf classifies an arbitrary Value, treating a nil interface as null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// nullValue is the sole inhabitant of KindNull.
type nullValue struct{}

// Kind implements Value.
func (nullValue) Kind() Kind { return KindNull }

// Null is the null scalar. A nil Value is treated identically everywhere.
var Null Value = nullValue{}

// Bool is a boolean scalar.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Number is a numeric scalar carried as float64. NaN, ±Inf and -0 are all
// representable; the equality engine treats NaN as equal to NaN and -0 as
// equal to 0.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// String is a string scalar.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Time is an instant container, the analog of a date object. Unlike List or
// Record it is never frozen in place: Clone and Freeze always hand out a
// fresh instance, since an instant holder has no fields for a freeze flag to
// protect.
type Time struct {
	instant time.Time
	valid   bool
}

// NewTime returns a valid Time holding the given instant.
func NewTime(t time.Time) *Time {
	return &Time{instant: t, valid: true}
}

// InvalidTime returns the invalid-instant value. Two invalid times compare
// equal to each other.
func InvalidTime() *Time {
	return &Time{}
}

// Kind implements Value.
func (t *Time) Kind() Kind { return KindTime }

// Instant returns the held instant. The zero time is returned when the
// value is invalid.
func (t *Time) Instant() time.Time { return t.instant }

// Valid reports whether the value holds a real instant.
func (t *Time) Valid() bool { return t.valid }

// copy returns an independent Time with the same state.
func (t *Time) copy() *Time {
	return &Time{instant: t.instant, valid: t.valid}
}

// Regexp is a pattern+flags container. The engine compares and copies it as
// two strings; it never interprets the pattern.
type Regexp struct {
	expr  string
	flags string
}

// NewRegexp returns a Regexp with the given pattern source and flags.
func NewRegexp(expr, flags string) *Regexp {
	return &Regexp{expr: expr, flags: flags}
}

// Kind implements Value.
func (r *Regexp) Kind() Kind { return KindRegexp }

// Expr returns the pattern source.
func (r *Regexp) Expr() string { return r.expr }

// Flags returns the flags string.
func (r *Regexp) Flags() string { return r.flags }

// Compile compiles the pattern with the standard library engine. Flags are
// not translated; callers that need flag semantics embed them in the
// pattern.
func (r *Regexp) Compile() (*regexp.Regexp, error) {
	return regexp.Compile(r.expr)
}

// List is an ordered container. Once frozen, Append and Set reject all
// mutation.
type List struct {
	items  []Value
	frozen bool
}

// NewList returns a mutable list holding the given items in order.
func NewList(items ...Value) *List {
	l := &List{items: make([]Value, len(items))}
	for i, item := range items {
		l.items[i] = normalize(item)
	}
	return l
}

// Kind implements Value.
func (l *List) Kind() Kind { return KindList }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// At returns the item at index i. It panics when i is out of range, the
// same contract as indexing a slice.
func (l *List) At(i int) Value { return l.items[i] }

// Append adds items to the end of the list. It fails with ErrFrozen once
// the list has been frozen.
func (l *List) Append(items ...Value) error {
	if l.frozen {
		return ErrFrozen
	}
	for _, item := range items {
		l.items = append(l.items, normalize(item))
	}
	return nil
}

// Set replaces the item at index i.
func (l *List) Set(i int, v Value) error {
	if l.frozen {
		return ErrFrozen
	}
	if i < 0 || i >= len(l.items) {
		return ErrIndexRange
	}
	l.items[i] = normalize(v)
	return nil
}

// Frozen reports whether the list rejects mutation.
func (l *List) Frozen() bool { return l.frozen }

// Range calls fn for each item in order until fn returns false.
func (l *List) Range(fn func(i int, v Value) bool) {
	for i, item := range l.items {
		if !fn(i, item) {
			return
		}
	}
}

// Record is a string-keyed field container. Once frozen, Set and Delete
// reject all mutation.
type Record struct {
	fields map[string]Value
	frozen bool
}

// NewRecord returns an empty mutable record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// RecordOf returns a mutable record holding a copy of the given fields.
func RecordOf(fields map[string]Value) *Record {
	r := &Record{fields: make(map[string]Value, len(fields))}
	for k, v := range fields {
		r.fields[k] = normalize(v)
	}
	return r
}

// Kind implements Value.
func (r *Record) Kind() Kind { return KindRecord }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Get returns the field value and whether the key is present.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Set stores a field. It fails with ErrFrozen once the record has been
// frozen.
func (r *Record) Set(key string, v Value) error {
	if r.frozen {
		return ErrFrozen
	}
	r.fields[key] = normalize(v)
	return nil
}

// Delete removes a field.
func (r *Record) Delete(key string) error {
	if r.frozen {
		return ErrFrozen
	}
	delete(r.fields, key)
	return nil
}

// Keys returns the field names in sorted order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Frozen reports whether the record rejects mutation.
func (r *Record) Frozen() bool { return r.frozen }

// Range calls fn for each field in sorted key order until fn returns false.
func (r *Record) Range(fn func(key string, v Value) bool) {
	for _, k := range r.Keys() {
		if !fn(k, r.fields[k]) {
			return
		}
	}
}

// mapEntry is one key/value pair of a Map.
type mapEntry struct {
	key Value
	val Value
}

// Map is an unordered key/value container whose keys are themselves values.
// Freezing a Map is deliberately asymmetric: the contents are deep-frozen
// but the container shape stays open, so entries may still be added or
// removed. Anything inserted after the freeze is frozen on the way in.
type Map struct {
	entries        []mapEntry
	contentsFrozen bool
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{}
}

// Kind implements Value.
func (m *Map) Kind() Kind { return KindMap }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Set stores an entry. Keys collide under sameKey semantics: scalar keys by
// value, container keys by reference identity. Set never fails; when the
// contents are frozen the incoming key and value are deep-frozen first.
func (m *Map) Set(key, val Value) {
	key = normalize(key)
	val = normalize(val)
	if m.contentsFrozen {
		key = Freeze(key)
		val = Freeze(val)
	}
	for i := range m.entries {
		if sameKey(m.entries[i].key, key) {
			m.entries[i].val = val
			return
		}
	}
	m.entries = append(m.entries, mapEntry{key: key, val: val})
}

// Get returns the value stored under key, looked up with sameKey semantics.
func (m *Map) Get(key Value) (Value, bool) {
	key = normalize(key)
	for i := range m.entries {
		if sameKey(m.entries[i].key, key) {
			return m.entries[i].val, true
		}
	}
	return nil, false
}

// Delete removes the entry stored under key and reports whether one was
// present. Deletion stays possible after a freeze; only the contents are
// immutable, not the container shape.
func (m *Map) Delete(key Value) bool {
	key = normalize(key)
	for i := range m.entries {
		if sameKey(m.entries[i].key, key) {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ContentsFrozen reports whether entries are deep-frozen on insertion.
func (m *Map) ContentsFrozen() bool { return m.contentsFrozen }

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key, val Value) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// Set is an unordered membership container. Its freeze behavior mirrors
// Map: contents deep-frozen, shape still open for Add and Delete.
type Set struct {
	members        []Value
	contentsFrozen bool
}

// NewSet returns a set holding the given members, deduplicated under
// sameKey semantics.
func NewSet(members ...Value) *Set {
	s := &Set{}
	for _, v := range members {
		s.Add(v)
	}
	return s
}

// Kind implements Value.
func (s *Set) Kind() Kind { return KindSet }

// Len returns the number of members.
func (s *Set) Len() int { return len(s.members) }

// Add inserts a member. Duplicates under sameKey semantics are ignored.
// When the contents are frozen the incoming member is deep-frozen first.
func (s *Set) Add(v Value) {
	v = normalize(v)
	if s.contentsFrozen {
		v = Freeze(v)
	}
	for _, m := range s.members {
		if sameKey(m, v) {
			return
		}
	}
	s.members = append(s.members, v)
}

// Has reports membership under sameKey semantics.
func (s *Set) Has(v Value) bool {
	v = normalize(v)
	for _, m := range s.members {
		if sameKey(m, v) {
			return true
		}
	}
	return false
}

// Delete removes a member and reports whether it was present.
func (s *Set) Delete(v Value) bool {
	v = normalize(v)
	for i, m := range s.members {
		if sameKey(m, v) {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// ContentsFrozen reports whether members are deep-frozen on insertion.
func (s *Set) ContentsFrozen() bool { return s.contentsFrozen }

// Range calls fn for each member in insertion order until fn returns false.
func (s *Set) Range(fn func(v Value) bool) {
	for _, m := range s.members {
		if !fn(m) {
			return
		}
	}
}

// normalize maps a nil interface to the Null scalar so that every stored
// node has a usable Kind.
func normalize(v Value) Value {
	if v == nil {
		return Null
	}
	return v
}

// scalarEqual compares two scalars of the same kind. Numbers follow
// same-value-zero semantics: NaN equals NaN and -0 equals 0.
func scalarEqual(a, b Value) bool {
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.(Bool) == b.(Bool)
	case KindString:
		return a.(String) == b.(String)
	case KindNumber:
		x, y := float64(a.(Number)), float64(b.(Number))
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	default:
		return false
	}
}

// sameKey is the key-collision rule for Map and Set storage: scalars by
// value, everything else by reference identity. This mirrors how object
// keys behave in identity-keyed containers and is intentionally narrower
// than Equal, which compares structurally.
func sameKey(a, b Value) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull, KindBool, KindNumber, KindString:
		return scalarEqual(a, b)
	default:
		return a == b
	}
}
