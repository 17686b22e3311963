package mathx

import (
	"fmt"
	"math/big"
)

// MulFullWidth returns the double-width product of a and b. high holds the
// upper BitWidth[T]() bits as a T, low holds the lower BitWidth[T]() bits.
func MulFullWidth[T Integer](a, b T) (high T, low uint64) {
	p := new(big.Int).Mul(ToBig(a), ToBig(b))

	w := uint(BitWidth[T]())
	low = new(big.Int).And(p, new(big.Int).SetUint64(mask[T]())).Uint64()
	// Rsh rounds towards negative infinity, which is the arithmetic shift
	// two's complement needs for the high half.
	p.Rsh(p, w)
	return fromBig[T](p), low
}

// DivFullWidth divides the double-width value formed by high and low by
// divisor. It panics if divisor is zero or if the quotient does not fit in T,
// the same way an integer division by zero panics.
func DivFullWidth[T Integer](high T, low uint64, divisor T) (quotient, remainder T) {
	if divisor == 0 {
		panic("mathx: division by zero")
	}

	w := uint(BitWidth[T]())
	dividend := new(big.Int).Lsh(ToBig(high), w)
	dividend.Or(dividend, new(big.Int).SetUint64(low&mask[T]()))

	q, r := new(big.Int).QuoRem(dividend, ToBig(divisor), new(big.Int))
	if !FitsBig[T](q) {
		panic(fmt.Sprintf("mathx: quotient %s overflows %T", q, divisor))
	}
	return fromBig[T](q), fromBig[T](r)
}

// ToBig returns v as a big.Int.
func ToBig[T Integer](v T) *big.Int {
	if IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// FitsBig reports whether v is representable by T.
func FitsBig[T Integer](v *big.Int) bool {
	lo, hi := Limits[T]()
	return v.Cmp(ToBig(lo)) >= 0 && v.Cmp(ToBig(hi)) <= 0
}

func fromBig[T Integer](v *big.Int) T {
	if IsSigned[T]() {
		return T(v.Int64())
	}
	return T(v.Uint64())
}
