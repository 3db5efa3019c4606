package value

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestStringify_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"null", Null, "null"},
		{"nil", nil, "null"},
		{"true", Bool(true), "true"},
		{"number", Number(1.5), "1.5"},
		{"integer-valued", Number(3), "3"},
		{"nan renders null", Number(math.NaN()), "null"},
		{"string", String(`he said "hi"`), `"he said \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStringify_Containers(t *testing.T) {
	r := NewRecord()
	r.Set("b", Number(2))
	r.Set("a", Number(1))
	if got := Stringify(r); got != `{"a":1,"b":2}` {
		t.Errorf("Record keys not sorted: %s", got)
	}

	l := NewList(Number(1), String("x"))
	if got := Stringify(l); got != `[1,"x"]` {
		t.Errorf("List rendered as %s", got)
	}

	m := NewMap()
	m.Set(String("k"), Number(1))
	if got := Stringify(m); got != `{"$map":[["k",1]]}` {
		t.Errorf("Map rendered as %s", got)
	}

	s := NewSet(Number(1), Number(2))
	if got := Stringify(s); got != `{"$set":[1,2]}` {
		t.Errorf("Set rendered as %s", got)
	}
}

func TestStringify_TaggedLeaves(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if got := Stringify(ts); got != `{"$time":"2024-01-01T00:00:00Z"}` {
		t.Errorf("Time rendered as %s", got)
	}
	if got := Stringify(InvalidTime()); got != `{"$time":null}` {
		t.Errorf("Invalid time rendered as %s", got)
	}
	if got := Stringify(NewRegexp("a+", "i")); got != `{"$regexp":"/a+/i"}` {
		t.Errorf("Regexp rendered as %s", got)
	}
}

func TestStringify_Cycle(t *testing.T) {
	r := NewRecord()
	r.Set("v", Number(1))
	r.Set("self", r)

	got := Stringify(r)
	if !strings.Contains(got, "[Circular]") {
		t.Errorf("Expected cycle marker, got %s", got)
	}
}

func TestStringify_SharedSubtreeNotCircular(t *testing.T) {
	shared := NewList(Number(1))
	r := NewRecord()
	r.Set("a", shared)
	r.Set("b", shared)

	got := Stringify(r)
	if strings.Contains(got, "Circular") {
		t.Errorf("Shared (acyclic) subtree wrongly reported as a cycle: %s", got)
	}
}
