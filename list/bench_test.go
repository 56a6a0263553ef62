package list_test

import (
	"testing"

	godslist "github.com/emirpasic/gods/lists/singlylinkedlist"

	"github.com/katalvlaran/adt/list"
)

const benchN = 1 << 12

// BenchmarkPrependAndWalk measures n head inserts followed by a full
// cursor traversal on the arena-backed list.
func BenchmarkPrependAndWalk(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := list.New[int]()
		for j := 0; j < benchN; j++ {
			_ = l.Insert(0, j)
		}
		sum := 0
		for cur := l.Traverse(); cur.Next(); {
			sum += cur.Value()
		}
		_ = sum
	}
}

// BenchmarkPrependAndWalk_GodsSinglyLinkedList runs the identical workload
// on emirpasic/gods' pointer-based singly linked list for comparison.
func BenchmarkPrependAndWalk_GodsSinglyLinkedList(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := godslist.New()
		for j := 0; j < benchN; j++ {
			l.Prepend(j)
		}
		sum := 0
		it := l.Iterator()
		for it.Next() {
			sum += it.Value().(int)
		}
		_ = sum
	}
}
