package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adt/list"
)

// collect drains a fresh traversal into a slice.
func collect[T any](l *list.List[T]) []T {
	var out []T
	for cur := l.Traverse(); cur.Next(); {
		out = append(out, cur.Value())
	}

	return out
}

// TestHeadPrepend inserts 0..4 at position 0 and expects reverse order,
// the defining property of head-prepend semantics.
func TestHeadPrepend(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Insert(0, i))
	}

	assert.Equal(t, []int{4, 3, 2, 1, 0}, collect(l))
	assert.Equal(t, 5, l.Len())
}

// TestPositionalInsertDelete builds [0 1 2 3 4] positionally and deletes
// position 2, expecting [0 1 3 4].
func TestPositionalInsertDelete(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Insert(i, i)) // append at the tail each time
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(l))

	require.NoError(t, l.Delete(2))
	assert.Equal(t, []int{0, 1, 3, 4}, collect(l))
	assert.Equal(t, 4, l.Len())
}

// TestDeleteHead verifies the O(1) head unlink path.
func TestDeleteHead(t *testing.T) {
	l := list.New[string]()
	require.NoError(t, l.Insert(0, "b"))
	require.NoError(t, l.Insert(0, "a"))

	require.NoError(t, l.Delete(0))
	assert.Equal(t, []string{"b"}, collect(l))
}

// TestBounds exercises the validation grid for Insert, Delete, and At.
func TestBounds(t *testing.T) {
	l := list.New[int]()

	assert.ErrorIs(t, l.Delete(0), list.ErrIndexOutOfRange)
	_, err := l.At(0)
	assert.ErrorIs(t, err, list.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Insert(1, 9), list.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Insert(-1, 9), list.ErrIndexOutOfRange)

	require.NoError(t, l.Insert(0, 1))
	assert.ErrorIs(t, l.Delete(1), list.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Insert(2, 9), list.ErrIndexOutOfRange)
}

// TestAt verifies positional reads against a known layout.
func TestAt(t *testing.T) {
	l := list.New[int]()
	for i, v := range []int{10, 20, 30} {
		require.NoError(t, l.Insert(i, v))
	}

	for i, want := range []int{10, 20, 30} {
		got, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestTraverse_Restartable verifies that each Traverse call yields an
// independent cursor starting from the head.
func TestTraverse_Restartable(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Insert(i, i))
	}

	c1 := l.Traverse()
	require.True(t, c1.Next())
	require.True(t, c1.Next())
	assert.Equal(t, 1, c1.Value())

	// A second cursor is unaffected by the first one's progress.
	c2 := l.Traverse()
	require.True(t, c2.Next())
	assert.Equal(t, 0, c2.Value())

	// Exhaustion is terminal.
	require.True(t, c1.Next())
	assert.False(t, c1.Next())
	assert.False(t, c1.Next())
	assert.Zero(t, c1.Value())
}

// TestArenaRecycling deletes and reinserts enough times to force freed
// slots back into service, then checks the logical sequence stayed intact.
func TestArenaRecycling(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 4; i++ {
		require.NoError(t, l.Insert(i, i))
	}

	for round := 0; round < 10; round++ {
		require.NoError(t, l.Delete(0))
		require.NoError(t, l.Insert(l.Len(), 100+round))
	}

	assert.Equal(t, []int{106, 107, 108, 109}, collect(l))
}
