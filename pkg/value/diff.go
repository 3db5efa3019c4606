package value

import "fmt"

// ChangeAction categorizes a single structural change.
type ChangeAction string

const (
	// ChangeActionAdd marks a node present in the right graph only.
	ChangeActionAdd ChangeAction = "add"

	// ChangeActionRemove marks a node present in the left graph only.
	ChangeActionRemove ChangeAction = "remove"

	// ChangeActionModify marks a node present in both graphs with
	// different content.
	ChangeActionModify ChangeAction = "modify"
)

// Change describes one structural difference between two value graphs.
type Change struct {
	// Path addresses the differing node: "." for the root, ".a.b" for
	// record fields, ".items[2]" for list indices.
	Path string `json:"path"`

	// Before is the left-hand node, nil for additions.
	Before Value `json:"-"`

	// After is the right-hand node, nil for removals.
	After Value `json:"-"`

	// Action is the change category.
	Action ChangeAction `json:"action"`
}

// Diff returns the path-addressed structural differences between two value
// graphs. Records and lists are descended into; maps, sets, times and
// regexps are reported as whole-value modifications when unequal, since
// their elements have no stable path. An empty result means the graphs are
// structurally equal. Cyclic graphs are handled with the same paired-visit
// rule as Equal.
func Diff(a, b Value) []Change {
	var out []Change
	diffValue(normalize(a), normalize(b), ".", make(partners), &out)
	return out
}

func diffValue(a, b Value, path string, seen partners, out *[]Change) {
	if a == b {
		return
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		*out = append(*out, Change{Path: path, Before: a, After: b, Action: ChangeActionModify})
		return
	}

	switch ka {
	case KindNull, KindBool, KindNumber, KindString, KindTime, KindRegexp:
		if !equalValue(a, b, make(partners)) {
			*out = append(*out, Change{Path: path, Before: a, After: b, Action: ChangeActionModify})
		}
		return
	}

	if prev, ok := seen.partner(a); ok {
		if prev != b {
			*out = append(*out, Change{Path: path, Before: a, After: b, Action: ChangeActionModify})
		}
		return
	}
	seen.bind(a, b)

	switch ka {
	case KindRecord:
		ra, rb := a.(*Record), b.(*Record)
		for _, k := range ra.Keys() {
			av := ra.fields[k]
			bv, ok := rb.fields[k]
			if !ok {
				*out = append(*out, Change{Path: childPath(path, k), Before: av, Action: ChangeActionRemove})
				continue
			}
			diffValue(av, bv, childPath(path, k), seen, out)
		}
		for _, k := range rb.Keys() {
			if _, ok := ra.fields[k]; !ok {
				*out = append(*out, Change{Path: childPath(path, k), After: rb.fields[k], Action: ChangeActionAdd})
			}
		}
	case KindList:
		la, lb := a.(*List), b.(*List)
		n := len(la.items)
		if len(lb.items) < n {
			n = len(lb.items)
		}
		for i := 0; i < n; i++ {
			diffValue(la.items[i], lb.items[i], indexPath(path, i), seen, out)
		}
		for i := n; i < len(la.items); i++ {
			*out = append(*out, Change{Path: indexPath(path, i), Before: la.items[i], Action: ChangeActionRemove})
		}
		for i := n; i < len(lb.items); i++ {
			*out = append(*out, Change{Path: indexPath(path, i), After: lb.items[i], Action: ChangeActionAdd})
		}
	case KindMap, KindSet:
		// Unordered containers have no stable element paths.
		if !equalValue(a, b, make(partners)) {
			*out = append(*out, Change{Path: path, Before: a, After: b, Action: ChangeActionModify})
		}
	}
}

func childPath(path, key string) string {
	if path == "." {
		return "." + key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	if path == "." {
		return fmt.Sprintf(".[%d]", i)
	}
	return fmt.Sprintf("%s[%d]", path, i)
}
