package array_test

import (
	"fmt"

	"github.com/katalvlaran/adt/array"
)

// ExampleArray demonstrates the fixed-capacity insert/delete walkthrough:
// three inserts at successive positions, then a delete that shifts the
// suffix left.
//
// Complexity: each Insert/Delete is O(n) due to shifting.
func ExampleArray() {
	a, _ := array.New[int](5)
	for i := 0; i < 3; i++ {
		_ = a.Insert(i, i*10)
	}
	fmt.Println(a)

	_ = a.Delete(1)
	fmt.Println("after delete:", a)

	// Output:
	// Array([0 10 20])
	// after delete: Array([0 20])
}
