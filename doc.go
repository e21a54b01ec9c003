// Package nanobv provides fixed-width bit vectors carried in a single
// machine word.
//
// A Vector pairs an unsigned backing word (uint8, uint16, uint32 or
// uint64) with a logical length in bits chosen at construction. All
// operations respect the logical length: bits at or above it are kept
// zero, arithmetic truncates to it and out-of-range bit offsets are
// rejected. Vectors are immutable values; every operation returns a new
// vector and values can be shared across goroutines without locking.
//
// # Quick Start
//
//	v, err := nanobv.New[uint8](0b0011101, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v.Bit(0)           // 1
//	v.SetBit(1)        // 0b0011111/7
//	v.Reverse()        // 0b1011100/7
//
// The Vec8 through Vec64 aliases name the four instantiations, and Must
// unwraps constructions with lengths known to be valid:
//
//	var reg nanobv.Vec16 = nanobv.Must(nanobv.Zeros[uint16](12))
//
// # Arithmetic
//
// Binary operations accept a second vector of the same word type and
// truncate their result to the shorter of the two logical lengths:
//
//	a := nanobv.Must(nanobv.Ones[uint8](8))  // 0b11111111/8
//	b := nanobv.Must(nanobv.Ones[uint8](4))  // 0b1111/4
//	a.And(b)                                 // 0b1111/4
//	a.Add(b)                                 // 0b1110/4
//
// Intermediate results are computed over 256 bits, so products and sums
// that overflow the backing word are exact before truncation. Div and Mod
// panic with ErrDivisionByZero on a zero-valued divisor rather than
// returning a silent zero.
//
// # Errors
//
// Constructors return an *ErrInvalidLength for lengths outside
// [1, BitWidth[T]()]. Offset-taking accessors treat a bad offset as a
// programming error and panic with an *ErrOutOfRange.
package nanobv
