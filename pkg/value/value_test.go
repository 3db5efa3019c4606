package value

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Kind
	}{
		{"nil", nil, KindNull},
		{"null", Null, KindNull},
		{"bool", Bool(false), KindBool},
		{"number", Number(0), KindNumber},
		{"string", String(""), KindString},
		{"time", NewTime(time.Now()), KindTime},
		{"regexp", NewRegexp("a", ""), KindRegexp},
		{"list", NewList(), KindList},
		{"map", NewMap(), KindMap},
		{"set", NewSet(), KindSet},
		{"record", NewRecord(), KindRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.in); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if KindRecord.String() != "record" || KindNull.String() != "null" {
		t.Error("Unexpected kind names")
	}
	if Kind(99).String() != "unknown" {
		t.Error("Expected unknown for out-of-range kind")
	}
}

func TestList_SetBounds(t *testing.T) {
	l := NewList(Number(1))
	if err := l.Set(5, Number(2)); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Expected ErrIndexRange, got %v", err)
	}
	if err := l.Set(-1, Number(2)); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Expected ErrIndexRange for negative index, got %v", err)
	}
	if err := l.Set(0, Number(2)); err != nil {
		t.Errorf("Expected in-range Set to succeed, got %v", err)
	}
}

func TestList_NilItemNormalized(t *testing.T) {
	l := NewList(nil)
	if l.At(0) != Null {
		t.Error("Expected nil item to normalize to Null")
	}
}

func TestMap_ScalarKeyCollision(t *testing.T) {
	m := NewMap()
	m.Set(String("k"), Number(1))
	m.Set(String("k"), Number(2))
	if m.Len() != 1 {
		t.Fatalf("Expected scalar keys to collide, len %d", m.Len())
	}
	v, ok := m.Get(String("k"))
	if !ok || !Equal(v, Number(2)) {
		t.Errorf("Expected last write to win, got %v", v)
	}

	// NaN keys collide with NaN (same-value-zero storage rule).
	m.Set(Number(math.NaN()), String("nan"))
	m.Set(Number(math.NaN()), String("nan2"))
	if m.Len() != 2 {
		t.Errorf("Expected NaN keys to collide, len %d", m.Len())
	}
}

func TestMap_ObjectKeysByIdentity(t *testing.T) {
	k1, k2 := NewRecord(), NewRecord()
	m := NewMap()
	m.Set(k1, Number(1))
	m.Set(k2, Number(2))
	if m.Len() != 2 {
		t.Fatalf("Expected distinct object keys to coexist, len %d", m.Len())
	}
	if v, ok := m.Get(k1); !ok || !Equal(v, Number(1)) {
		t.Errorf("Expected identity lookup to find k1's value, got %v", v)
	}
}

func TestSet_Dedupe(t *testing.T) {
	s := NewSet(Number(1), Number(1), String("a"))
	if s.Len() != 2 {
		t.Errorf("Expected duplicates collapsed, len %d", s.Len())
	}
	if !s.Has(Number(1)) || !s.Has(String("a")) {
		t.Error("Expected members present")
	}
	if !s.Delete(Number(1)) {
		t.Error("Expected delete to report presence")
	}
	if s.Has(Number(1)) {
		t.Error("Expected member removed")
	}
}

func TestRecord_Keys(t *testing.T) {
	r := NewRecord()
	r.Set("c", Null)
	r.Set("a", Null)
	r.Set("b", Null)
	keys := r.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestRegexp_Compile(t *testing.T) {
	re, err := NewRegexp("a+b", "").Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !re.MatchString("aab") {
		t.Error("Expected pattern to match")
	}
	if _, err := NewRegexp("(", "").Compile(); err == nil {
		t.Error("Expected invalid pattern to fail")
	}
}
