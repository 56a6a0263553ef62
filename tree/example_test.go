package tree_test

import (
	"fmt"

	"github.com/katalvlaran/adt/tree"
)

// ExampleTree_DFS builds root→{A→{A1}, B→{B1,B2}} and prints the
// pre-order traversal.
func ExampleTree_DFS() {
	tr := tree.New("root")
	a, _ := tr.Add(tr.Root(), "A")
	b, _ := tr.Add(tr.Root(), "B")
	_, _ = tr.Add(a, "A1")
	_, _ = tr.Add(b, "B1")
	_, _ = tr.Add(b, "B2")

	var order []string
	for cur := tr.DFS(); cur.Next(); {
		order = append(order, cur.Value())
	}
	fmt.Println("DFS traversal:", order)

	// Output:
	// DFS traversal: [root A A1 B B1 B2]
}
