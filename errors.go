package nanobv

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is the panic value of Div and Mod when the divisor
	// holds the value zero.
	ErrDivisionByZero = errors.New("division by zero-valued vector")
)

// ErrInvalidLength indicates a requested logical length outside the range
// supported by the backing word.
type ErrInvalidLength struct {
	Length int
	Width  int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length %d: must be in [1, %d]", e.Length, e.Width)
}

// ErrOutOfRange indicates a bit offset at or beyond a vector's logical
// length. It is the panic value of the offset-taking accessors.
type ErrOutOfRange struct {
	Offset int
	Length int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("bit offset %d out of range for length %d", e.Offset, e.Length)
}
