package queue_test

import (
	"fmt"

	"github.com/katalvlaran/adt/queue"
)

// ExampleQueue enqueues three values into a capacity-4 ring, dequeues one,
// and enqueues another to show the wrap-friendly logical order.
func ExampleQueue() {
	q, _ := queue.New[int](4)
	for i := 0; i < 3; i++ {
		_ = q.Enqueue(i)
	}
	fmt.Println(q)

	head, _ := q.Dequeue()
	fmt.Println("dequeue->", head, q)

	_ = q.Enqueue(99)
	fmt.Println("after enqueue 99:", q)

	// Output:
	// Queue([0 1 2])
	// dequeue-> 0 Queue([1 2])
	// after enqueue 99: Queue([1 2 99])
}
