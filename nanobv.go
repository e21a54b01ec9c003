package nanobv

import "math/bits"

// Uint is the set of unsigned word types a Vector can be backed by.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vector is a fixed-width bit vector: an unsigned backing word paired with
// a logical length in bits. The length is chosen at construction, stays in
// [1, BitWidth[T]()] for the lifetime of the value and every operation
// keeps the word masked so that bits at or above the length are zero.
//
// Vector is an immutable value type. Methods return new vectors instead of
// mutating the receiver, so values can be shared freely across goroutines.
// The zero value Vector[T]{} has length zero and is not valid; construct
// vectors with New, Zeros, Ones or Default.
type Vector[T Uint] struct {
	data   T
	length int
}

// Shorthand instantiations for the four supported word sizes.
type (
	Vec8  = Vector[uint8]
	Vec16 = Vector[uint16]
	Vec32 = Vector[uint32]
	Vec64 = Vector[uint64]
)

// BitWidth reports the size of the backing word type in bits.
func BitWidth[T Uint]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// upperBound returns the largest value representable in length bits. The
// full-width case is special so the intermediate shift stays in range.
func upperBound[T Uint](length int) T {
	if length == BitWidth[T]() {
		return ^T(0)
	}
	return T(1)<<length - 1
}

// masked builds a vector from an already validated length, truncating data
// to it. Every constructor and operation funnels through here.
func masked[T Uint](data T, length int) Vector[T] {
	return Vector[T]{data: data & upperBound[T](length), length: length}
}

// New returns a vector of the given logical length holding data truncated
// to that length. The length must be in [1, BitWidth[T]()]; otherwise New
// returns an *ErrInvalidLength.
func New[T Uint](data T, length int) (Vector[T], error) {
	if length < 1 || length > BitWidth[T]() {
		return Vector[T]{}, &ErrInvalidLength{Length: length, Width: BitWidth[T]()}
	}
	return masked(data, length), nil
}

// Zeros returns an all-zero vector of the given logical length.
func Zeros[T Uint](length int) (Vector[T], error) {
	return New[T](0, length)
}

// Ones returns an all-one vector of the given logical length.
func Ones[T Uint](length int) (Vector[T], error) {
	v, err := New[T](0, length)
	if err != nil {
		return Vector[T]{}, err
	}
	return v.Set(), nil
}

// Default returns the zero vector spanning the full backing word, e.g.
// Default[uint8]() has value 0 and length 8.
func Default[T Uint]() Vector[T] {
	return Vector[T]{length: BitWidth[T]()}
}

// Must unwraps a constructor result, panicking on error. It allows simple
// chained use for lengths known to be valid:
//
//	v := nanobv.Must(nanobv.New[uint8](0x2D, 6))
func Must[T Uint](v Vector[T], err error) Vector[T] {
	if err != nil {
		panic(err)
	}
	return v
}

// Len reports the logical length in bits.
func (v Vector[T]) Len() int { return v.length }

// Width reports the size of the backing word in bits, regardless of the
// logical length.
func (v Vector[T]) Width() int { return BitWidth[T]() }

// Value returns the backing word. Bits at or above the logical length are
// always zero.
func (v Vector[T]) Value() T { return v.data }

// UpperBound returns the largest value the vector can hold, the all-ones
// pattern of its logical length.
func (v Vector[T]) UpperBound() T { return upperBound[T](v.length) }

// SetValue returns a vector of the same logical length holding value
// truncated to it.
func (v Vector[T]) SetValue(value T) Vector[T] {
	return masked(value, v.length)
}

// checkOffset panics with an *ErrOutOfRange unless 0 <= offset < length.
func (v Vector[T]) checkOffset(offset int) {
	if offset < 0 || offset >= v.length {
		panic(&ErrOutOfRange{Offset: offset, Length: v.length})
	}
}

// Bit returns the bit at offset as 0 or 1. Offset 0 is the least
// significant bit. It panics with an *ErrOutOfRange if offset is not below
// the logical length.
func (v Vector[T]) Bit(offset int) T {
	v.checkOffset(offset)
	return v.data >> offset & 1
}

// SetBit returns a copy of v with the bit at offset set to one. It panics
// with an *ErrOutOfRange if offset is not below the logical length.
func (v Vector[T]) SetBit(offset int) Vector[T] {
	v.checkOffset(offset)
	return masked(v.data|T(1)<<offset, v.length)
}

// ClearBit returns a copy of v with the bit at offset set to zero. It
// panics with an *ErrOutOfRange if offset is not below the logical length.
func (v Vector[T]) ClearBit(offset int) Vector[T] {
	v.checkOffset(offset)
	return masked(v.data&^(T(1)<<offset), v.length)
}

// AssignBit returns a copy of v with the bit at offset cleared when value
// is zero and set otherwise. It panics with an *ErrOutOfRange if offset is
// not below the logical length.
func (v Vector[T]) AssignBit(value T, offset int) Vector[T] {
	if value == 0 {
		return v.ClearBit(offset)
	}
	return v.SetBit(offset)
}

// Clear returns the all-zero vector of the same logical length.
func (v Vector[T]) Clear() Vector[T] {
	return masked(T(0), v.length)
}

// Set returns the all-one vector of the same logical length.
func (v Vector[T]) Set() Vector[T] {
	return masked(^T(0), v.length)
}

// Reverse returns a vector of the same logical length with the bit order
// flipped: bit i of the result is bit length-1-i of v. Reversal is its own
// inverse.
func (v Vector[T]) Reverse() Vector[T] {
	r := reverse(v.data) >> (BitWidth[T]() - v.length)
	return masked(r, v.length)
}

// reverse mirrors all bits of the backing word.
func reverse[T Uint](x T) T {
	return T(bits.Reverse64(uint64(x)) >> (64 - BitWidth[T]()))
}
