package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/openfacet/openfacet/pkg/value"
)

// FromGo converts a decoded Go value (the shape encoding/json, yaml.v3 and
// the CUE decoder produce) into a value graph. Map keys must be strings;
// time.Time converts to a Time node. Values that already are value nodes
// pass through unchanged.
func FromGo(v any) (value.Value, error) {
	switch n := v.(type) {
	case nil:
		return value.Null, nil
	case value.Value:
		return n, nil
	case bool:
		return value.Bool(n), nil
	case string:
		return value.String(n), nil
	case int:
		return value.Number(n), nil
	case int8:
		return value.Number(n), nil
	case int16:
		return value.Number(n), nil
	case int32:
		return value.Number(n), nil
	case int64:
		return value.Number(n), nil
	case uint:
		return value.Number(n), nil
	case uint8:
		return value.Number(n), nil
	case uint16:
		return value.Number(n), nil
	case uint32:
		return value.Number(n), nil
	case uint64:
		return value.Number(n), nil
	case float32:
		return value.Number(n), nil
	case float64:
		return value.Number(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("config: number %q: %w", n.String(), err)
		}
		return value.Number(f), nil
	case time.Time:
		return value.NewTime(n), nil
	case []any:
		l := value.NewList()
		for i, item := range n {
			cv, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			if err := l.Append(cv); err != nil {
				return nil, err
			}
		}
		return l, nil
	case map[string]any:
		r := value.NewRecord()
		for k, item := range n {
			cv, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if err := r.Set(k, cv); err != nil {
				return nil, err
			}
		}
		return r, nil
	case map[any]any:
		// Older YAML decoders hand out interface-keyed maps.
		r := value.NewRecord()
		for k, item := range n {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: map key %T", ErrUnsupportedType, k)
			}
			cv, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", ks, err)
			}
			if err := r.Set(ks, cv); err != nil {
				return nil, err
			}
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// ToGo converts a value graph back into plain Go values: records become
// map[string]any, lists and sets become []any, times become time.Time and
// regexps become their pattern string. Maps with only string keys become
// map[string]any; otherwise they become a []any of [key, value] pairs.
// ToGo does not guard against cycles; it is meant for the acyclic documents
// the loaders produce.
func ToGo(v value.Value) any {
	if value.KindOf(v) == value.KindNull {
		return nil
	}
	switch n := v.(type) {
	case value.Bool:
		return bool(n)
	case value.Number:
		return float64(n)
	case value.String:
		return string(n)
	case *value.Time:
		if !n.Valid() {
			return nil
		}
		return n.Instant()
	case *value.Regexp:
		return n.Expr()
	case *value.List:
		out := make([]any, 0, n.Len())
		n.Range(func(_ int, item value.Value) bool {
			out = append(out, ToGo(item))
			return true
		})
		return out
	case *value.Set:
		out := make([]any, 0, n.Len())
		n.Range(func(item value.Value) bool {
			out = append(out, ToGo(item))
			return true
		})
		return out
	case *value.Record:
		out := make(map[string]any, n.Len())
		n.Range(func(k string, item value.Value) bool {
			out[k] = ToGo(item)
			return true
		})
		return out
	case *value.Map:
		stringKeyed := true
		n.Range(func(k, _ value.Value) bool {
			if value.KindOf(k) != value.KindString {
				stringKeyed = false
			}
			return stringKeyed
		})
		if stringKeyed {
			out := make(map[string]any, n.Len())
			n.Range(func(k, item value.Value) bool {
				out[string(k.(value.String))] = ToGo(item)
				return true
			})
			return out
		}
		out := make([]any, 0, n.Len())
		n.Range(func(k, item value.Value) bool {
			out = append(out, []any{ToGo(k), ToGo(item)})
			return true
		})
		return out
	default:
		return nil
	}
}
