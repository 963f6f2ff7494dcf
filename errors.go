package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches every *OutOfRangeError under errors.Is.
var ErrOutOfRange = errors.New("vector: index out of range")

// OutOfRangeError is returned by the checked accessors when Index is not
// in [0, Size).
type OutOfRangeError struct {
	Index int // requested index
	Size  int // vector length at the time of the call
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", e.Index, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
