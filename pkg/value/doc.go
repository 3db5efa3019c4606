// Package value implements the structural value-graph engine at the core of
// openfacet: deep cloning, deep freezing, and structural equality over
// heterogeneous, possibly cyclic graphs of runtime values.
//
// # Value model
//
// A graph node is any Value. Scalars (Null, Bool, Number, String) are
// immutable named types shared freely between graphs. Time and Regexp are
// small state containers that the engine always copies rather than freezes.
// The four structural containers (List, Record, Map, Set) are pointer
// types, so reference identity is well defined and a graph may contain
// cycles. KindOf classifies any node into exactly one of these categories.
//
// # The three engines
//
// Clone produces a fully independent copy of a graph:
//
//	dup := value.Clone(root)
//
// Freeze makes every reachable List and Record reject further mutation and
// hands out fresh copies of Time and Regexp nodes. Map and Set freeze
// asymmetrically: contents are deep-frozen (including anything inserted
// later) while the container shape stays open:
//
//	owned := value.Freeze(value.Clone(input))
//
// Equal compares two graphs structurally, with same-value-zero number
// semantics, order-independent Map and Set matching, and termination on
// cyclic inputs:
//
//	if value.Equal(a, b) { ... }
//
// All three are pure, synchronous, total functions. Each allocates one
// identity-keyed visited map per top-level call and discards it on return;
// nothing is shared between calls, so the package is safe for concurrent
// use on disjoint graphs.
//
// # Cycles
//
// Every traversal registers a container node before descending into its
// children. A cycle therefore resolves to the already-produced result
// instead of recursing forever. For equality, a revisited (left, right)
// pair is assumed equal; revisiting the left node with a different partner
// is a mismatch. Call-stack depth is bounded by graph depth, not node
// count; pathologically deep non-cyclic graphs remain the caller's
// responsibility.
//
// # Supporting operations
//
// Diff reports path-addressed differences between two graphs, and
// Stringify renders a graph as a display-oriented JSON-shaped string with
// tagged Map/Set/Time/Regexp nodes and inline cycle markers.
package value
