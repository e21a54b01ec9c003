package nanobv

import "math/bits"

// Not returns the bitwise complement within the logical length.
func (v Vector[T]) Not() Vector[T] {
	return masked(^v.data, v.length)
}

// FlipBit returns a copy of v with the bit at offset inverted. It panics
// with an *ErrOutOfRange if offset is not below the logical length.
func (v Vector[T]) FlipBit(offset int) Vector[T] {
	v.checkOffset(offset)
	return masked(v.data^T(1)<<offset, v.length)
}

// RotateLeft returns v rotated left by k bits within the logical length.
// Bits shifted past the top re-enter at offset zero. Negative k rotates
// right. Any k is accepted; rotation by a multiple of the length is the
// identity.
func (v Vector[T]) RotateLeft(k int) Vector[T] {
	n := k % v.length
	if n < 0 {
		n += v.length
	}
	if n == 0 {
		return v
	}
	return masked(v.data<<n|v.data>>(v.length-n), v.length)
}

// OnesCount reports the number of set bits.
func (v Vector[T]) OnesCount() int {
	return bits.OnesCount64(uint64(v.data))
}

// LeadingZeros reports the number of zero bits from the top of the logical
// length down to the highest set bit. It is the length itself when no bit
// is set.
func (v Vector[T]) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(v.data)) - (64 - v.length)
}

// TrailingZeros reports the number of zero bits below the lowest set bit.
// It is the length itself when no bit is set.
func (v Vector[T]) TrailingZeros() int {
	if v.data == 0 {
		return v.length
	}
	return bits.TrailingZeros64(uint64(v.data))
}

// NextSetBit returns the offset of the first set bit at or after offset,
// or -1 when no set bit remains. Offsets at or beyond the logical length
// return -1, so walking terminates cleanly:
//
//	for i := v.NextSetBit(0); i >= 0; i = v.NextSetBit(i + 1) { ... }
//
// It panics with an *ErrOutOfRange if offset is negative.
func (v Vector[T]) NextSetBit(offset int) int {
	if offset < 0 {
		panic(&ErrOutOfRange{Offset: offset, Length: v.length})
	}
	if offset >= v.length {
		return -1
	}
	rest := uint64(v.data) >> offset
	if rest == 0 {
		return -1
	}
	return offset + bits.TrailingZeros64(rest)
}

// Slice returns the bits of the half-open range [start, end) as a new
// vector of length end-start, with bit start of v at offset zero. It
// panics with an *ErrOutOfRange unless 0 <= start < end <= Len().
func (v Vector[T]) Slice(start, end int) Vector[T] {
	if start < 0 || start >= v.length {
		panic(&ErrOutOfRange{Offset: start, Length: v.length})
	}
	if end <= start || end > v.length {
		panic(&ErrOutOfRange{Offset: end, Length: v.length})
	}
	return masked(v.data>>start, end-start)
}

// Equal reports whether v and o share both value and logical length.
func (v Vector[T]) Equal(o Vector[T]) bool {
	return v == o
}

// Cmp compares v and o, ordering first by logical length and then by
// value. It returns -1 when v is less, 0 when equal and 1 when greater.
func (v Vector[T]) Cmp(o Vector[T]) int {
	switch {
	case v.length != o.length:
		if v.length < o.length {
			return -1
		}
		return 1
	case v.data != o.data:
		if v.data < o.data {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// IsZero reports whether no bit is set.
func (v Vector[T]) IsZero() bool {
	return v.data == 0
}
