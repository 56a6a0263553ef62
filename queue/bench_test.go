package queue_test

import (
	"testing"

	godsring "github.com/emirpasic/gods/queues/circularbuffer"

	"github.com/katalvlaran/adt/queue"
)

const benchCap = 1 << 10

// BenchmarkEnqueueDequeue cycles values through a full ring, exercising the
// wrap-around path on every iteration.
func BenchmarkEnqueueDequeue(b *testing.B) {
	q, err := queue.New[int](benchCap)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < benchCap; i++ {
		_ = q.Enqueue(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := q.Dequeue()
		_ = q.Enqueue(v)
	}
}

// BenchmarkEnqueueDequeue_GodsCircularBuffer runs the same cycle on
// emirpasic/gods' circular buffer for comparison. Note the semantic
// difference: the gods buffer overwrites the oldest element when full,
// ours refuses with ErrCapacityExceeded.
func BenchmarkEnqueueDequeue_GodsCircularBuffer(b *testing.B) {
	q := godsring.New(benchCap)
	for i := 0; i < benchCap; i++ {
		q.Enqueue(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := q.Dequeue()
		q.Enqueue(v)
	}
}
