package list_test

import (
	"fmt"

	"github.com/katalvlaran/adt/list"
)

// ExampleList inserts five values at successive positions, deletes
// position 2, and walks the result with a cursor.
func ExampleList() {
	l := list.New[int]()
	for i := 0; i < 5; i++ {
		_ = l.Insert(i, i)
	}
	fmt.Println(l)

	_ = l.Delete(2)
	fmt.Println("after delete pos2:", l)

	for cur := l.Traverse(); cur.Next(); {
		fmt.Print(cur.Value(), " ")
	}
	fmt.Println()

	// Output:
	// List([0 1 2 3 4])
	// after delete pos2: List([0 1 3 4])
	// 0 1 3 4
}
