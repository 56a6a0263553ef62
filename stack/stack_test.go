package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adt/stack"
)

// TestPushPopPeek_EndToEnd replays the canonical walkthrough: push
// 'a','b','c','d', pop 'd', peek 'c'.
func TestPushPopPeek_EndToEnd(t *testing.T) {
	s := stack.New[rune]()
	for _, c := range "abcd" {
		s.Push(c)
	}
	require.Equal(t, 4, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 'd', v)

	v, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 'c', v)
	assert.Equal(t, 3, s.Len())
}

// TestLIFOOrder drains a stack and expects strict reverse insertion order.
func TestLIFOOrder(t *testing.T) {
	s := stack.New[int]()
	for i := 0; i < 10; i++ {
		s.Push(i)
	}

	for want := 9; want >= 0; want-- {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Len())
}

// TestEmptyCollection verifies Pop/Peek sentinels on an empty stack,
// including a stack that was drained back to empty.
func TestEmptyCollection(t *testing.T) {
	s := stack.New[string]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmptyCollection)
	_, err = s.Peek()
	assert.ErrorIs(t, err, stack.ErrEmptyCollection)

	s.Push("x")
	_, err = s.Pop()
	require.NoError(t, err)
	_, err = s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmptyCollection)
}
