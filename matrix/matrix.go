package matrix

import (
	"errors"
	"strings"

	"github.com/katalvlaran/adt/array"
)

var (
	// ErrBadShape indicates that New was called with non-positive dimensions.
	ErrBadShape = errors.New("matrix: rows and cols must be > 0")

	// ErrIndexOutOfRange indicates a row index outside [0, Rows()).
	// Column violations are reported by the row array and satisfy
	// errors.Is(err, array.ErrIndexOutOfRange).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)

// Matrix is a rows×cols grid of T stored as full array rows.
// Construct via New; the zero value is not usable.
type Matrix[T any] struct {
	rows []*array.Array[T]
	cols int
}

// New creates a rows×cols Matrix with every cell holding the zero value of T.
// Each row is an array.Array filled to capacity, so Set/At can rely on the
// row's own bounds checks for the column dimension.
// Complexity: O(rows·cols) time and memory.
func New[T any](rows, cols int) (*Matrix[T], error) {
	// 1. Validate shape before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// 2. Build and zero-fill each row.
	var zero T
	rs := make([]*array.Array[T], rows)
	for r := 0; r < rows; r++ {
		row, err := array.New[T](cols)
		if err != nil {
			return nil, err
		}
		for c := 0; c < cols; c++ {
			if err = row.Insert(c, zero); err != nil {
				return nil, err
			}
		}
		rs[r] = row
	}

	return &Matrix[T]{rows: rs, cols: cols}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Set assigns v at (r, c), delegating the column check to the row array.
// Complexity: O(1).
func (m *Matrix[T]) Set(r, c int, v T) error {
	if r < 0 || r >= len(m.rows) {
		return ErrIndexOutOfRange
	}

	return m.rows[r].Set(c, v)
}

// At returns the element at (r, c), delegating the column check to the row array.
// Complexity: O(1).
func (m *Matrix[T]) At(r, c int) (T, error) {
	if r < 0 || r >= len(m.rows) {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return m.rows[r].At(c)
}

// String renders one row per line using the row arrays' own formatting.
// Complexity: O(rows·cols).
func (m *Matrix[T]) String() string {
	parts := make([]string, len(m.rows))
	for r, row := range m.rows {
		parts[r] = row.String()
	}

	return strings.Join(parts, "\n")
}
