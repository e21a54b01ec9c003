// Package wide evaluates binary operations over 256-bit intermediates.
//
// Operands are promoted to 256 bits before the operation runs, so results
// that overflow the backing word (a 64x64-bit multiply, a sum carrying out
// of the top bit) are computed exactly and only then truncated to the
// caller's bit count. Division and modulo by zero are the caller's problem:
// they must be rejected before reaching this package.
package wide
