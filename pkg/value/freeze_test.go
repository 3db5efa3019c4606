package value

import (
	"errors"
	"testing"
	"time"
)

func TestFreeze_RecordRejectsMutation(t *testing.T) {
	r := NewRecord()
	r.Set("a", Number(1))

	got := Freeze(r)
	if got != Value(r) {
		t.Fatal("Expected record to be frozen in place")
	}
	if !r.Frozen() {
		t.Fatal("Expected record to report frozen")
	}

	if err := r.Set("a", Number(2)); !errors.Is(err, ErrFrozen) {
		t.Errorf("Expected ErrFrozen from Set, got %v", err)
	}
	if err := r.Set("b", Number(3)); !errors.Is(err, ErrFrozen) {
		t.Errorf("Expected ErrFrozen from new-key Set, got %v", err)
	}
	if err := r.Delete("a"); !errors.Is(err, ErrFrozen) {
		t.Errorf("Expected ErrFrozen from Delete, got %v", err)
	}

	v, _ := r.Get("a")
	if !Equal(v, Number(1)) {
		t.Errorf("Observable state changed, got %v", v)
	}
}

func TestFreeze_ListRejectsMutation(t *testing.T) {
	l := NewList(Number(1), Number(2))
	Freeze(l)

	if err := l.Append(Number(3)); !errors.Is(err, ErrFrozen) {
		t.Errorf("Expected ErrFrozen from Append, got %v", err)
	}
	if err := l.Set(0, Number(9)); !errors.Is(err, ErrFrozen) {
		t.Errorf("Expected ErrFrozen from Set, got %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Expected length to stay 2, got %d", l.Len())
	}
}

func TestFreeze_Deep(t *testing.T) {
	inner := NewList(Number(1), Number(2), NewRecord())
	b := NewRecord()
	b.Set("c", inner)
	root := NewRecord()
	root.Set("a", Number(1))
	root.Set("b", b)

	Freeze(root)

	if !b.Frozen() {
		t.Error("Expected nested record to be frozen")
	}
	if !inner.Frozen() {
		t.Error("Expected nested list to be frozen")
	}
	third := inner.At(2).(*Record)
	if !third.Frozen() {
		t.Error("Expected record inside list to be frozen")
	}
}

func TestFreeze_Idempotent(t *testing.T) {
	r := NewRecord()
	r.Set("a", NewList(Number(1)))

	once := Freeze(r)
	twice := Freeze(once)
	if once != twice {
		t.Error("Expected already-frozen container to be returned as-is")
	}
	if !Equal(once, twice) {
		t.Error("Expected freeze to be structurally idempotent")
	}
}

func TestFreeze_TimeAndRegexpCopied(t *testing.T) {
	instant := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orig := NewTime(instant)

	got := Freeze(orig)
	cl, ok := got.(*Time)
	if !ok {
		t.Fatalf("Expected *Time, got %T", got)
	}
	if cl == orig {
		t.Error("Expected freeze to return a fresh Time copy")
	}
	if !cl.Instant().Equal(instant) {
		t.Error("Expected instant preserved")
	}

	re := NewRegexp("x+", "g")
	fr := Freeze(re).(*Regexp)
	if fr == re {
		t.Error("Expected freeze to return a fresh Regexp copy")
	}
	if fr.Expr() != "x+" || fr.Flags() != "g" {
		t.Errorf("Expected source/flags preserved, got %q/%q", fr.Expr(), fr.Flags())
	}
}

func TestFreeze_NestedTimeReplaced(t *testing.T) {
	orig := NewTime(time.Unix(1000, 0))
	r := NewRecord()
	r.Set("when", orig)

	Freeze(r)

	got, _ := r.Get("when")
	if got == Value(orig) {
		t.Error("Expected nested Time to be replaced by a fresh copy")
	}
	if !Equal(got, orig) {
		t.Error("Expected replacement to hold the same instant")
	}
}

func TestFreeze_MapSetAsymmetry(t *testing.T) {
	inner := NewRecord()
	inner.Set("n", Number(1))
	m := NewMap()
	m.Set(String("k"), inner)

	Freeze(m)

	if !m.ContentsFrozen() {
		t.Fatal("Expected map contents to be frozen")
	}
	if !inner.Frozen() {
		t.Error("Expected existing value to be deep-frozen")
	}

	// The container shape stays open: inserting still works, and the
	// inserted value is frozen on the way in.
	late := NewRecord()
	late.Set("x", Number(2))
	m.Set(String("later"), late)
	if m.Len() != 2 {
		t.Errorf("Expected insertion into frozen-content map, len %d", m.Len())
	}
	if !late.Frozen() {
		t.Error("Expected late insert to be frozen on insertion")
	}
	if !m.Delete(String("k")) {
		t.Error("Expected deletion to stay possible")
	}

	s := NewSet()
	member := NewList(Number(1))
	s.Add(member)
	Freeze(s)
	if !member.Frozen() {
		t.Error("Expected existing member to be deep-frozen")
	}
	lateMember := NewList(Number(2))
	s.Add(lateMember)
	if s.Len() != 2 {
		t.Errorf("Expected insertion into frozen-content set, len %d", s.Len())
	}
	if !lateMember.Frozen() {
		t.Error("Expected late member to be frozen on insertion")
	}
}

func TestFreeze_Cycle(t *testing.T) {
	a := NewRecord()
	a.Set("v", Number(1))
	a.Set("self", a)

	got := Freeze(a)
	if got != Value(a) {
		t.Fatal("Expected cyclic record frozen in place")
	}
	if !a.Frozen() {
		t.Error("Expected frozen")
	}
}

func TestFreeze_Scalars(t *testing.T) {
	if got := Freeze(Number(1)); got != Value(Number(1)) {
		t.Errorf("Expected scalar returned unchanged, got %v", got)
	}
	if got := Freeze(nil); got != Null {
		t.Errorf("Expected nil to normalize to Null, got %v", got)
	}
}
