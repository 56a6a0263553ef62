package selection_test

import (
	"fmt"

	"github.com/katalvlaran/adt/selection"
)

// ExampleSelectDeterministic finds the median of a small slice.
// Note that the input is reordered in place.
func ExampleSelectDeterministic() {
	a := []int{9, 1, 7, 3, 5}
	v, _ := selection.SelectDeterministic(a, 2)
	fmt.Println("median:", v)

	// Output:
	// median: 5
}

// ExampleQuickselect finds the smallest and largest elements with the
// default deterministic pivot stream.
func ExampleQuickselect() {
	a := []int{4, 2, 8, 6}
	lo, _ := selection.Quickselect(a, 0)

	b := []int{4, 2, 8, 6}
	hi, _ := selection.Quickselect(b, len(b)-1)

	fmt.Println(lo, hi)

	// Output:
	// 2 8
}

// ExamplePartition splits a slice around a chosen pivot element.
func ExamplePartition() {
	a := []int{7, 2, 9, 4, 1}
	p, _ := selection.Partition(a, 0, len(a)-1, 3) // pivot value 4
	fmt.Println("pivot settled at:", p)
	fmt.Println("pivot value:", a[p])

	// Output:
	// pivot settled at: 2
	// pivot value: 4
}
