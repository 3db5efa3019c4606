package config

import (
	"errors"
	"testing"
	"time"

	"github.com/openfacet/openfacet/pkg/value"
)

func TestFromGo(t *testing.T) {
	instant := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want value.Value
	}{
		{"nil", nil, value.Null},
		{"bool", true, value.Bool(true)},
		{"int", 7, value.Number(7)},
		{"int64", int64(-3), value.Number(-3)},
		{"uint32", uint32(9), value.Number(9)},
		{"float64", 2.5, value.Number(2.5)},
		{"string", "x", value.String("x")},
		{"time", instant, value.NewTime(instant)},
		{"slice", []any{1, "a"}, value.NewList(value.Number(1), value.String("a"))},
		{
			"map",
			map[string]any{"k": []any{true}},
			value.RecordOf(map[string]value.Value{"k": value.NewList(value.Bool(true))}),
		},
		{
			"interface-keyed map",
			map[any]any{"k": 1},
			value.RecordOf(map[string]value.Value{"k": value.Number(1)}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.in)
			if err != nil {
				t.Fatalf("FromGo failed: %v", err)
			}
			if !value.Equal(got, tt.want) {
				t.Errorf("FromGo = %s, want %s", value.Stringify(got), value.Stringify(tt.want))
			}
		})
	}
}

func TestFromGo_Unsupported(t *testing.T) {
	if _, err := FromGo(struct{}{}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
	if _, err := FromGo(map[any]any{1: "x"}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType for non-string key, got %v", err)
	}
}

func TestFromGo_ValuePassthrough(t *testing.T) {
	l := value.NewList(value.Number(1))
	got, err := FromGo(l)
	if err != nil {
		t.Fatalf("FromGo failed: %v", err)
	}
	if got != value.Value(l) {
		t.Error("Expected value nodes to pass through unchanged")
	}
}

func TestToGo_RoundTrip(t *testing.T) {
	in := map[string]any{
		"name":  "demo",
		"count": float64(2),
		"tags":  []any{"a", "b"},
		"inner": map[string]any{"ok": true},
	}

	v, err := FromGo(in)
	if err != nil {
		t.Fatalf("FromGo failed: %v", err)
	}
	back, err := FromGo(ToGo(v))
	if err != nil {
		t.Fatalf("FromGo(ToGo) failed: %v", err)
	}
	if !value.Equal(v, back) {
		t.Errorf("Round trip changed the graph: %s vs %s", value.Stringify(v), value.Stringify(back))
	}
}

func TestToGo_TaggedKinds(t *testing.T) {
	if got := ToGo(value.Null); got != nil {
		t.Errorf("Expected nil for null, got %v", got)
	}

	instant := time.Unix(100, 0)
	if got := ToGo(value.NewTime(instant)); got != any(instant) {
		t.Errorf("Expected time.Time, got %v", got)
	}

	s := value.NewSet(value.Number(1))
	if got, ok := ToGo(s).([]any); !ok || len(got) != 1 {
		t.Errorf("Expected one-element slice for set, got %v", got)
	}

	m := value.NewMap()
	m.Set(value.String("k"), value.Number(1))
	if got, ok := ToGo(m).(map[string]any); !ok || got["k"] != float64(1) {
		t.Errorf("Expected string-keyed map, got %v", got)
	}

	m2 := value.NewMap()
	m2.Set(value.Number(1), value.String("one"))
	if got, ok := ToGo(m2).([]any); !ok || len(got) != 1 {
		t.Errorf("Expected pair list for non-string keys, got %v", got)
	}
}
