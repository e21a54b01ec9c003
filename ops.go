package nanobv

import "github.com/inspier/nanobv/internal/wide"

// applyOp runs op over the raw values of both operands in 256-bit space
// and narrows the result to the shorter of the two logical lengths.
// Operating in 256 bits first means carries, borrows and product bits
// beyond the backing word are computed exactly before truncation.
func applyOp[T Uint](v, o Vector[T], op wide.Op) Vector[T] {
	length := min(v.length, o.length)
	return masked(T(wide.Apply(op, uint64(v.data), uint64(o.data), length)), length)
}

// Add returns v + o truncated to the shorter logical length.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Add)
}

// Sub returns v - o truncated to the shorter logical length. Results below
// zero wrap modulo 2^length.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Sub)
}

// Mul returns v * o truncated to the shorter logical length.
func (v Vector[T]) Mul(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Mul)
}

// Div returns v / o truncated to the shorter logical length. It panics
// with ErrDivisionByZero when o holds the value zero.
func (v Vector[T]) Div(o Vector[T]) Vector[T] {
	if o.data == 0 {
		panic(ErrDivisionByZero)
	}
	return applyOp(v, o, wide.Div)
}

// Mod returns v % o truncated to the shorter logical length. It panics
// with ErrDivisionByZero when o holds the value zero.
func (v Vector[T]) Mod(o Vector[T]) Vector[T] {
	if o.data == 0 {
		panic(ErrDivisionByZero)
	}
	return applyOp(v, o, wide.Mod)
}

// And returns the bitwise AND of v and o truncated to the shorter logical
// length.
func (v Vector[T]) And(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.And)
}

// Or returns the bitwise OR of v and o truncated to the shorter logical
// length.
func (v Vector[T]) Or(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Or)
}

// Xor returns the bitwise XOR of v and o truncated to the shorter logical
// length.
func (v Vector[T]) Xor(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Xor)
}

// Lsh returns v shifted left by o's value, truncated to the shorter
// logical length. Shift amounts at or beyond the length produce zeros.
func (v Vector[T]) Lsh(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Lsh)
}

// Rsh returns v shifted right by o's value, truncated to the shorter
// logical length. Shift amounts at or beyond the receiver's length
// produce zeros; smaller amounts can pull the receiver's high bits into
// a shorter result window.
func (v Vector[T]) Rsh(o Vector[T]) Vector[T] {
	return applyOp(v, o, wide.Rsh)
}
