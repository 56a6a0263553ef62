package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adt/array"
	"github.com/katalvlaran/adt/list"
	"github.com/katalvlaran/adt/matrix"
	"github.com/katalvlaran/adt/queue"
	"github.com/katalvlaran/adt/stack"
	"github.com/katalvlaran/adt/tree"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "walk every container through its canonical operations",
	Run:   runDemo,
}

// runDemo prints successive container states. Every error here is a
// programming error in the walkthrough itself, hence the fatal logs.
func runDemo(*cobra.Command, []string) {
	demoArray()
	demoMatrix()
	demoStack()
	demoQueue()
	demoList()
	demoTree()
}

func demoArray() {
	fmt.Println("Array:")
	a, err := array.New[int](5)
	if err != nil {
		log.Fatal().Err(err).Msg("array demo setup")
	}
	for i := 0; i < 3; i++ {
		if err = a.Insert(i, i*10); err != nil {
			log.Fatal().Err(err).Msg("array demo insert")
		}
	}
	fmt.Println(a)

	if err = a.Delete(1); err != nil {
		log.Fatal().Err(err).Msg("array demo delete")
	}
	fmt.Println("after delete:", a)
	fmt.Println()
}

func demoMatrix() {
	fmt.Println("Matrix:")
	m, err := matrix.New[int](2, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("matrix demo setup")
	}
	if err = m.Set(0, 1, 7); err != nil {
		log.Fatal().Err(err).Msg("matrix demo set")
	}
	fmt.Println(m)
	fmt.Println()
}

func demoStack() {
	fmt.Println("Stack:")
	s := stack.New[string]()
	for _, c := range []string{"a", "b", "c", "d"} {
		s.Push(c)
	}
	fmt.Println(s)

	top, err := s.Pop()
	if err != nil {
		log.Fatal().Err(err).Msg("stack demo pop")
	}
	next, err := s.Peek()
	if err != nil {
		log.Fatal().Err(err).Msg("stack demo peek")
	}
	fmt.Println("pop->", top, "peek->", next)
	fmt.Println()
}

func demoQueue() {
	fmt.Println("Queue:")
	q, err := queue.New[int](4)
	if err != nil {
		log.Fatal().Err(err).Msg("queue demo setup")
	}
	for i := 0; i < 3; i++ {
		if err = q.Enqueue(i); err != nil {
			log.Fatal().Err(err).Msg("queue demo enqueue")
		}
	}
	fmt.Println(q)

	head, err := q.Dequeue()
	if err != nil {
		log.Fatal().Err(err).Msg("queue demo dequeue")
	}
	fmt.Println("dequeue->", head, q)

	if err = q.Enqueue(99); err != nil {
		log.Fatal().Err(err).Msg("queue demo enqueue 99")
	}
	fmt.Println("after enqueue 99:", q)
	fmt.Println()
}

func demoList() {
	fmt.Println("LinkedList:")
	l := list.New[int]()
	for i := 0; i < 5; i++ {
		if err := l.Insert(i, i); err != nil {
			log.Fatal().Err(err).Msg("list demo insert")
		}
	}
	fmt.Println(l)

	if err := l.Delete(2); err != nil {
		log.Fatal().Err(err).Msg("list demo delete")
	}
	fmt.Println("after delete pos2:", l)
	fmt.Println()
}

func demoTree() {
	fmt.Println("Tree demo (DFS):")
	tr := tree.New("root")
	a, err := tr.Add(tr.Root(), "A")
	if err != nil {
		log.Fatal().Err(err).Msg("tree demo add A")
	}
	b, err := tr.Add(tr.Root(), "B")
	if err != nil {
		log.Fatal().Err(err).Msg("tree demo add B")
	}
	for _, step := range []struct {
		parent tree.NodeID
		value  string
	}{{a, "A1"}, {b, "B1"}, {b, "B2"}} {
		if _, err = tr.Add(step.parent, step.value); err != nil {
			log.Fatal().Err(err).Str("value", step.value).Msg("tree demo add")
		}
	}

	var order []string
	for cur := tr.DFS(); cur.Next(); {
		order = append(order, cur.Value())
	}
	fmt.Println("DFS traversal:", order)
}
