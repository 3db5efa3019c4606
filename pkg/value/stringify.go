package value

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Stringify renders a value graph as a JSON-shaped string for display.
// Container kinds without a JSON analog are tagged: maps as
// {"$map":[[k,v],...]}, sets as {"$set":[...]}, times as {"$time":...} and
// regexps as {"$regexp":"..."}. A node re-entered through a cycle is
// rendered as the string "[Circular]". The output is for humans and logs,
// not a wire format; it is independent of the traversal engines and keeps
// its own visited bookkeeping.
func Stringify(v Value) string {
	var sb strings.Builder
	writeValue(&sb, normalize(v), make(map[Value]bool))
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, active map[Value]bool) {
	switch n := v.(type) {
	case nullValue:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(n)))
	case Number:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// Matches JSON stringification of non-finite numbers.
			sb.WriteString("null")
			return
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case String:
		writeString(sb, string(n))
	case *Time:
		sb.WriteString(`{"$time":`)
		if n.valid {
			writeString(sb, n.instant.UTC().Format(time.RFC3339Nano))
		} else {
			sb.WriteString("null")
		}
		sb.WriteByte('}')
	case *Regexp:
		sb.WriteString(`{"$regexp":`)
		writeString(sb, "/"+n.expr+"/"+n.flags)
		sb.WriteByte('}')
	case *List:
		if active[n] {
			writeString(sb, "[Circular]")
			return
		}
		active[n] = true
		sb.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeValue(sb, item, active)
		}
		sb.WriteByte(']')
		delete(active, n)
	case *Record:
		if active[n] {
			writeString(sb, "[Circular]")
			return
		}
		active[n] = true
		sb.WriteByte('{')
		for i, k := range n.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeString(sb, k)
			sb.WriteByte(':')
			writeValue(sb, n.fields[k], active)
		}
		sb.WriteByte('}')
		delete(active, n)
	case *Map:
		if active[n] {
			writeString(sb, "[Circular]")
			return
		}
		active[n] = true
		sb.WriteString(`{"$map":[`)
		for i, e := range n.entries {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('[')
			writeValue(sb, e.key, active)
			sb.WriteByte(',')
			writeValue(sb, e.val, active)
			sb.WriteByte(']')
		}
		sb.WriteString(`]}`)
		delete(active, n)
	case *Set:
		if active[n] {
			writeString(sb, "[Circular]")
			return
		}
		active[n] = true
		sb.WriteString(`{"$set":[`)
		for i, m := range n.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeValue(sb, m, active)
		}
		sb.WriteString(`]}`)
		delete(active, n)
	}
}

// writeString writes s as a JSON string literal.
func writeString(sb *strings.Builder, s string) {
	b, err := json.Marshal(s)
	if err != nil {
		sb.WriteString(strconv.Quote(s))
		return
	}
	sb.Write(b)
}
