package array

import "errors"

var (
	// ErrBadCapacity indicates that New was called with a non-positive capacity.
	ErrBadCapacity = errors.New("array: capacity must be > 0")

	// ErrCapacityExceeded indicates an Insert into an array whose logical
	// size already equals its capacity.
	ErrCapacityExceeded = errors.New("array: capacity exceeded")

	// ErrIndexOutOfRange indicates an index outside the valid bounds of the
	// requested operation (Insert allows index == Len(); all others do not).
	ErrIndexOutOfRange = errors.New("array: index out of range")
)
