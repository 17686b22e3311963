package clampx

import (
	"cmp"
	"math/bits"

	"github.com/clampint/x/mathx"
)

// Everything below forwards to the base type unchanged.

func (x Int[B]) Equal(y Int[B]) bool {
	return x.value == y.value
}

func (x Int[B]) Less(y Int[B]) bool {
	return x.value < y.value
}

// Compare returns -1, 0 or +1 depending on whether x is less than, equal to
// or greater than y.
func (x Int[B]) Compare(y Int[B]) int {
	return cmp.Compare(x.value, y.value)
}

// Signum returns -1, 0 or +1 according to the sign of x.
func (x Int[B]) Signum() int {
	return cmp.Compare(x.value, 0)
}

func (x Int[B]) IsZero() bool {
	return x.value == 0
}

func (x Int[B]) And(y Int[B]) Int[B] {
	return Int[B]{value: x.value & y.value}
}

func (x Int[B]) Or(y Int[B]) Int[B] {
	return Int[B]{value: x.value | y.value}
}

func (x Int[B]) Xor(y Int[B]) Int[B] {
	return Int[B]{value: x.value ^ y.value}
}

// AndNot returns x &^ y.
func (x Int[B]) AndNot(y Int[B]) Int[B] {
	return Int[B]{value: x.value &^ y.value}
}

// Not returns the bitwise complement of x.
func (x Int[B]) Not() Int[B] {
	return Int[B]{value: ^x.value}
}

// Shl returns x << n. Bits shifted out are lost, it does not saturate.
func (x Int[B]) Shl(n uint) Int[B] {
	return Int[B]{value: x.value << n}
}

// Shr returns x >> n, an arithmetic shift for signed B.
func (x Int[B]) Shr(n uint) Int[B] {
	return Int[B]{value: x.value >> n}
}

// Div returns x/y truncated toward zero. It panics if y is zero. For signed
// B, Min()/-1 is Min(): division is not saturated.
func (x Int[B]) Div(y Int[B]) Int[B] {
	return Int[B]{value: x.value / y.value}
}

// Rem returns x%y. It panics if y is zero.
func (x Int[B]) Rem(y Int[B]) Int[B] {
	return Int[B]{value: x.value % y.value}
}

// DivReportingOverflow returns x/y and whether the base division overflowed.
// Unlike the saturating operations the flag is meaningful here.
func (x Int[B]) DivReportingOverflow(y Int[B]) (Int[B], bool) {
	q, overflow := mathx.DivReportingOverflow(x.value, y.value)
	return Int[B]{value: q}, overflow
}

func (x Int[B]) RemReportingOverflow(y Int[B]) (Int[B], bool) {
	r, overflow := mathx.RemReportingOverflow(x.value, y.value)
	return Int[B]{value: r}, overflow
}

// MulFullWidth returns the double-width product of x and y, split into the
// high half and the raw bits of the low half.
func (x Int[B]) MulFullWidth(y Int[B]) (high Int[B], low uint64) {
	h, l := mathx.MulFullWidth(x.value, y.value)
	return Int[B]{value: h}, l
}

// DivFullWidth divides the double-width value high:low by x. It panics when
// x is zero or the quotient does not fit in B.
func (x Int[B]) DivFullWidth(high Int[B], low uint64) (quotient, remainder Int[B]) {
	q, r := mathx.DivFullWidth(high.value, low, x.value)
	return Int[B]{value: q}, Int[B]{value: r}
}

func (x *Int[B]) DivAssign(y Int[B]) {
	*x = x.Div(y)
}

func (x *Int[B]) RemAssign(y Int[B]) {
	*x = x.Rem(y)
}

func (x *Int[B]) AndAssign(y Int[B]) {
	*x = x.And(y)
}

func (x *Int[B]) OrAssign(y Int[B]) {
	*x = x.Or(y)
}

func (x *Int[B]) XorAssign(y Int[B]) {
	*x = x.Xor(y)
}

func (x *Int[B]) ShlAssign(n uint) {
	*x = x.Shl(n)
}

func (x *Int[B]) ShrAssign(n uint) {
	*x = x.Shr(n)
}

func (x Int[B]) BitWidth() int {
	return mathx.BitWidth[B]()
}

// Magnitude returns the absolute value of x. It is a uint64 so that the
// magnitude of a signed minimum is representable.
func (x Int[B]) Magnitude() uint64 {
	if x.value < 0 {
		// -int64(math.MinInt64) wraps to itself, whose uint64 is 1<<63
		return uint64(-int64(x.value))
	}
	return uint64(x.value)
}

// OnesCount returns the number of one bits in the two's complement
// representation of x.
func (x Int[B]) OnesCount() int {
	return bits.OnesCount64(mathx.Bits(x.value))
}

func (x Int[B]) LeadingZeros() int {
	return bits.LeadingZeros64(mathx.Bits(x.value)) - (64 - x.BitWidth())
}

func (x Int[B]) TrailingZeros() int {
	return min(bits.TrailingZeros64(mathx.Bits(x.value)), x.BitWidth())
}

// ReverseBytes returns x with its bytes in reverse order.
func (x Int[B]) ReverseBytes() Int[B] {
	return Int[B]{value: B(bits.ReverseBytes64(mathx.Bits(x.value)) >> (64 - x.BitWidth()))}
}

// Words returns x as a little-endian sequence of machine words. Negative
// values are sign-extended to fill the last word.
func (x Int[B]) Words() []uint {
	n := (x.BitWidth() + bits.UintSize - 1) / bits.UintSize
	words := make([]uint, n)
	// the uint64 conversion sign-extends
	v := uint64(x.value)
	for i := range words {
		words[i] = uint(v >> (i * bits.UintSize))
	}
	return words
}
