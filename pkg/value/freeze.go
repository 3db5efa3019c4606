package value

// Freeze makes every container reachable from v immutable and returns the
// result. Lists and records are frozen in place: their mutators fail with
// ErrFrozen afterwards. Time and Regexp nodes are replaced by fresh,
// unfrozen copies; a freeze flag cannot disable their state, so handing out
// an independent copy is what actually protects the caller. Map and Set are
// frozen asymmetrically: their current contents (keys included) are
// deep-frozen and anything inserted later is frozen on insertion, but the
// container shape itself stays open.
//
// An already-frozen container is returned as-is without re-walking its
// children. That fast path is also the cycle guard: the frozen flag is set
// before descending, so a cycle terminates at its first revisit.
func Freeze(v Value) Value {
	switch n := v.(type) {
	case nil:
		return Null
	case *Time:
		return n.copy()
	case *Regexp:
		return NewRegexp(n.expr, n.flags)
	case *List:
		if n.frozen {
			return n
		}
		n.frozen = true
		for i, item := range n.items {
			n.items[i] = Freeze(item)
		}
		return n
	case *Record:
		if n.frozen {
			return n
		}
		n.frozen = true
		for k, item := range n.fields {
			n.fields[k] = Freeze(item)
		}
		return n
	case *Map:
		if n.contentsFrozen {
			return n
		}
		n.contentsFrozen = true
		for i := range n.entries {
			n.entries[i].key = Freeze(n.entries[i].key)
			n.entries[i].val = Freeze(n.entries[i].val)
		}
		return n
	case *Set:
		if n.contentsFrozen {
			return n
		}
		n.contentsFrozen = true
		for i := range n.members {
			n.members[i] = Freeze(n.members[i])
		}
		return n
	default:
		return v
	}
}
