package wide

import "github.com/holiman/uint256"

// Op is a binary operation over 256-bit integers in uint256's receiver
// form: it stores x op y into z and returns z.
type Op func(z, x, y *uint256.Int) *uint256.Int

// Operations usable with Apply. The shift operations take their amount
// from the right operand's value.
var (
	Add Op = (*uint256.Int).Add
	Sub Op = (*uint256.Int).Sub
	Mul Op = (*uint256.Int).Mul
	Div Op = (*uint256.Int).Div
	Mod Op = (*uint256.Int).Mod
	And Op = (*uint256.Int).And
	Or  Op = (*uint256.Int).Or
	Xor Op = (*uint256.Int).Xor
	Lsh Op = lsh
	Rsh Op = rsh
)

// Apply computes x op y over 256 bits and truncates the result to the low
// bits bits. bits must be in [1, 64].
func Apply(op Op, x, y uint64, bits int) uint64 {
	var xw, yw, zw, mw uint256.Int
	xw.SetUint64(x)
	yw.SetUint64(y)
	mw.SetUint64(mask(bits))
	op(&zw, &xw, &yw)
	zw.And(&zw, &mw)
	return zw.Uint64()
}

// mask returns the all-ones pattern of the given bit count. The shift form
// stays in range for the full 64-bit count, where 1<<bits - 1 would not.
func mask(bits int) uint64 {
	return ^uint64(0) >> (64 - uint(bits))
}

func lsh(z, x, y *uint256.Int) *uint256.Int {
	return z.Lsh(x, shiftAmount(y))
}

func rsh(z, x, y *uint256.Int) *uint256.Int {
	return z.Rsh(x, shiftAmount(y))
}

// shiftAmount clamps y to 256, past which any shift of a 256-bit value
// yields zero. The clamp keeps the uint conversion safe on 32-bit targets.
func shiftAmount(y *uint256.Int) uint {
	if !y.IsUint64() {
		return 256
	}
	if n := y.Uint64(); n < 256 {
		return uint(n)
	}
	return 256
}
