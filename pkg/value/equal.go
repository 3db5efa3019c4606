package value

// Equal reports whether two value graphs are structurally identical. It is
// reflexive, symmetric, and never loops: comparison of cyclic graphs
// terminates by assuming a revisited pair equal until proven otherwise.
// Two differently-shaped cyclic graphs whose cycles happen to align can
// therefore be judged equal; that pragmatic behavior is kept deliberately,
// a canonical-form comparison being far more expensive.
func Equal(a, b Value) bool {
	return equalValue(a, b, make(partners))
}

func equalValue(a, b Value, seen partners) bool {
	a = normalize(a)
	b = normalize(b)

	// Reference identity (and scalar value identity) first.
	if a == b {
		return true
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return false
	}

	switch ka {
	case KindNull, KindBool, KindNumber, KindString:
		return scalarEqual(a, b)
	case KindTime:
		ta, tb := a.(*Time), b.(*Time)
		if !ta.valid || !tb.valid {
			// Two invalid instants are equal to each other.
			return ta.valid == tb.valid
		}
		return ta.instant.Equal(tb.instant)
	case KindRegexp:
		ra, rb := a.(*Regexp), b.(*Regexp)
		return ra.expr == rb.expr && ra.flags == rb.flags
	}

	// Container kinds from here on. Bind the pair before descending; a
	// revisit of the same pair is assumed equal, a revisit of a with a
	// different partner is a structural mismatch.
	if prev, ok := seen.partner(a); ok {
		return prev == b
	}
	seen.bind(a, b)

	switch ka {
	case KindList:
		return equalLists(a.(*List), b.(*List), seen)
	case KindRecord:
		return equalRecords(a.(*Record), b.(*Record), seen)
	case KindMap:
		return equalMaps(a.(*Map), b.(*Map), seen)
	case KindSet:
		return equalSets(a.(*Set), b.(*Set), seen)
	default:
		return false
	}
}

func equalLists(a, b *List, seen partners) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !equalValue(a.items[i], b.items[i], seen) {
			return false
		}
	}
	return true
}

func equalRecords(a, b *Record, seen partners) bool {
	if len(a.fields) != len(b.fields) {
		return false
	}
	for k, av := range a.fields {
		bv, ok := b.fields[k]
		if !ok || !equalValue(av, bv, seen) {
			return false
		}
	}
	// Key presence must hold in both directions.
	for k := range b.fields {
		if _, ok := a.fields[k]; !ok {
			return false
		}
	}
	return true
}

func equalMaps(a, b *Map, seen partners) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for _, ae := range a.entries {
		found := false
		for _, be := range b.entries {
			// Each candidate pairing is speculative: compare against a
			// fork and commit its bindings only on a match, so a failed
			// candidate cannot poison later ones.
			attempt := seen.fork()
			if equalValue(ae.key, be.key, attempt) && equalValue(ae.val, be.val, attempt) {
				seen.merge(attempt)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func equalSets(a, b *Set, seen partners) bool {
	if len(a.members) != len(b.members) {
		return false
	}
	// Order-independent membership match. O(n^2) is acceptable for the
	// small sets this engine sees in practice.
	for _, am := range a.members {
		found := false
		for _, bm := range b.members {
			attempt := seen.fork()
			if equalValue(am, bm, attempt) {
				seen.merge(attempt)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
