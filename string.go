package nanobv

import "fmt"

// String renders the vector as a zero-padded binary literal followed by
// its logical length, e.g. "0b0011101/7".
func (v Vector[T]) String() string {
	return fmt.Sprintf("0b%0*b/%d", v.length, uint64(v.data), v.length)
}
