package value

// visited is the identity-keyed memo shared by the traversal engines. Keys
// are container nodes (pointer identity through the interface); values are
// whatever result the traversal has already produced for that node. One
// visited map lives for exactly one top-level call and is discarded on
// return.
type visited map[Value]Value

// lookup returns the result already produced for src, if any.
func (vs visited) lookup(src Value) (Value, bool) {
	dup, ok := vs[src]
	return dup, ok
}

// register records the result for src. The clone engine calls this before
// descending into children, which is what makes cyclic structures clonable:
// a child that references an ancestor resolves to the already-allocated
// (still being populated) destination.
func (vs visited) register(src, result Value) {
	vs[src] = result
}

// partners tracks in-progress comparison pairs for the equality engine.
// A node of the left graph is bound to its right-hand partner the first
// time the pair is descended into; re-encountering the pair is assumed
// equal (termination guarantee), while re-encountering the left node with a
// different partner is a structural mismatch.
type partners map[Value]Value

// bind records b as the partner of a.
func (p partners) bind(a, b Value) {
	p[a] = b
}

// partner returns the recorded partner of a, if any.
func (p partners) partner(a Value) (Value, bool) {
	b, ok := p[a]
	return b, ok
}

// fork returns an independent copy for a speculative comparison. Unordered
// containers try each candidate pairing against a fork so that a failed
// candidate leaves no bindings behind; only a successful fork is merged back.
func (p partners) fork() partners {
	q := make(partners, len(p))
	for a, b := range p {
		q[a] = b
	}
	return q
}

// merge adopts the bindings recorded in a successful fork.
func (p partners) merge(q partners) {
	for a, b := range q {
		p[a] = b
	}
}
