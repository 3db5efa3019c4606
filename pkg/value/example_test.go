package value_test

import (
	"fmt"
	"time"

	"github.com/openfacet/openfacet/pkg/value"
)

// Example_snapshot demonstrates the clone-then-freeze pattern used to take
// an owned, immutable snapshot of caller-supplied input.
func Example_snapshot() {
	raw := value.NewRecord()
	raw.Set("name", value.String("payment"))
	raw.Set("amount", value.Number(125.50))
	raw.Set("created", value.NewTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	snapshot := value.Freeze(value.Clone(raw)).(*value.Record)

	// The snapshot is independent of the input...
	raw.Set("amount", value.Number(0))
	amount, _ := snapshot.Get("amount")
	fmt.Println(value.Stringify(amount))

	// ...and rejects mutation.
	err := snapshot.Set("amount", value.Number(999))
	fmt.Println(err)

	// Output:
	// 125.5
	// value: container is frozen
}

// Example_equal demonstrates structural comparison of independently built
// graphs, including unordered containers.
func Example_equal() {
	a := value.NewSet(value.Number(1), value.Number(2), value.Number(3))
	b := value.NewSet(value.Number(3), value.Number(1), value.Number(2))
	fmt.Println(value.Equal(a, b))

	ma := value.NewMap()
	ma.Set(value.String("k"), value.RecordOf(map[string]value.Value{"v": value.Number(1)}))
	mb := value.NewMap()
	mb.Set(value.String("k"), value.RecordOf(map[string]value.Value{"v": value.Number(1)}))
	fmt.Println(value.Equal(ma, mb))

	// Output:
	// true
	// true
}

// Example_cycle demonstrates that all three engines terminate on
// self-referential graphs.
func Example_cycle() {
	a := value.NewRecord()
	a.Set("v", value.Number(1))
	a.Set("self", a)

	dup := value.Clone(a)
	value.Freeze(a)
	fmt.Println(value.Equal(a, dup))
	fmt.Println(value.Equal(a, a))

	// Output:
	// true
	// true
}
