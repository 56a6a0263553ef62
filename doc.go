// Package adt is a teaching collection of classic abstract data types and
// order-statistic selection algorithms, written as small, independent,
// well-documented Go packages.
//
// 🚀 What is adt?
//
//	A pure-Go catalogue that brings together:
//		• Bounded containers: fixed-capacity Array, row-major Matrix
//		• Sequential containers: growable Stack, circular-buffer Queue
//		• Linked structures: singly linked List and n-ary Tree, both backed
//		  by index-addressed node arenas instead of raw pointers
//		• Selection: Lomuto partition, iterative median-of-medians,
//		  deterministic worst-case O(n) selection and randomized Quickselect
//
// ✨ Why choose adt?
//
//   - Beginner-friendly – minimal API per package, clear, intuitive naming
//   - Honest contracts – sentinel errors for every bounds failure, no panics
//   - Pure Go – no cgo, no hidden deps in the library packages
//   - Reproducible – every random source is an explicit, seedable *rand.Rand
//
// Everything is organized as one package per structure or algorithm:
//
//	array/     — fixed-capacity array with O(n) insert/delete shifting
//	matrix/    — row-major matrix composed of array rows
//	stack/     — growable LIFO stack
//	queue/     — fixed-capacity circular queue
//	list/      — arena-backed singly linked list with cursor traversal
//	tree/      — arena-backed n-ary tree with pre-order DFS cursor
//	selection/ — partition, median-of-medians, deterministic & randomized select
//	dataset/   — deterministic input distributions for the benchmark driver
//	cmd/adt/   — `adt demo` and `adt bench` command-line drivers
//
// Quick taste:
//
//	a, _ := array.New[int](5)
//	_ = a.Insert(0, 10)
//
//	v, err := selection.SelectDeterministic([]int{9, 1, 7, 3}, 2) // v == 7
//
// The containers are deliberately simple: each is a self-contained lesson in
// one representation trade-off (shifting vs. linking, bounded vs. growable,
// contiguous vs. arena). The selection package is the algorithmic heart:
// it demonstrates how guaranteed pivot quality turns Quickselect's expected
// linear time into a worst-case bound.
//
//	go get github.com/katalvlaran/adt
package adt
