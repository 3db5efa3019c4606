package value

// Clone returns a fully independent copy of the value graph rooted at v.
// Scalars are shared (they are immutable), Time and Regexp become fresh
// instances, and containers are rebuilt recursively. Cyclic graphs clone in
// time proportional to the number of distinct nodes; shared subtrees stay
// shared in the copy. Clones are always mutable, whatever the freeze state
// of the source.
func Clone(v Value) Value {
	return cloneValue(v, make(visited))
}

func cloneValue(v Value, seen visited) Value {
	switch n := v.(type) {
	case nil:
		return Null
	case *Time:
		return n.copy()
	case *Regexp:
		return NewRegexp(n.expr, n.flags)
	case *List:
		if dup, ok := seen.lookup(n); ok {
			return dup
		}
		dup := &List{items: make([]Value, len(n.items))}
		seen.register(n, dup)
		for i, item := range n.items {
			dup.items[i] = cloneValue(item, seen)
		}
		return dup
	case *Record:
		if dup, ok := seen.lookup(n); ok {
			return dup
		}
		dup := &Record{fields: make(map[string]Value, len(n.fields))}
		seen.register(n, dup)
		for k, item := range n.fields {
			dup.fields[k] = cloneValue(item, seen)
		}
		return dup
	case *Map:
		if dup, ok := seen.lookup(n); ok {
			return dup
		}
		dup := &Map{entries: make([]mapEntry, 0, len(n.entries))}
		seen.register(n, dup)
		for _, e := range n.entries {
			// Keys are values too: an object-typed key is cloned, not
			// reused. Entries are appended directly; the source map already
			// holds distinct keys and cloning preserves their distinctness.
			dup.entries = append(dup.entries, mapEntry{
				key: cloneValue(e.key, seen),
				val: cloneValue(e.val, seen),
			})
		}
		return dup
	case *Set:
		if dup, ok := seen.lookup(n); ok {
			return dup
		}
		dup := &Set{members: make([]Value, 0, len(n.members))}
		seen.register(n, dup)
		for _, m := range n.members {
			dup.members = append(dup.members, cloneValue(m, seen))
		}
		return dup
	default:
		// Scalar kinds are immutable and shared by design.
		return v
	}
}
