package clampx

import "github.com/clampint/x/mathx"

// Add returns x+rhs, saturated to B's bounds.
func (x Int[B]) Add(rhs Int[B]) Int[B] {
	sum, overflow := mathx.AddReportingOverflow(x.value, rhs.value)
	if !overflow {
		return Int[B]{value: sum}
	}
	// an addition can only overflow in the direction of rhs
	if rhs.value > 0 {
		return Max[B]()
	}
	return Min[B]()
}

// Sub returns x-rhs, saturated to B's bounds.
func (x Int[B]) Sub(rhs Int[B]) Int[B] {
	diff, overflow := mathx.SubReportingOverflow(x.value, rhs.value)
	if !overflow {
		return Int[B]{value: diff}
	}
	if rhs.value > 0 {
		return Min[B]()
	}
	return Max[B]()
}

// Mul returns x*rhs, saturated to B's bounds. Min()*-1 saturates to Max(),
// while Max()*-1 is exact.
func (x Int[B]) Mul(rhs Int[B]) Int[B] {
	product, overflow := mathx.MulReportingOverflow(x.value, rhs.value)
	if !overflow {
		return Int[B]{value: product}
	}
	if (x.value > 0) == (rhs.value > 0) {
		return Max[B]()
	}
	return Min[B]()
}

// Negate returns 0-x. For signed B, Min().Negate() is Max().
func (x Int[B]) Negate() Int[B] {
	return Zero[B]().Sub(x)
}

func (x *Int[B]) AddAssign(rhs Int[B]) {
	*x = x.Add(rhs)
}

func (x *Int[B]) SubAssign(rhs Int[B]) {
	*x = x.Sub(rhs)
}

func (x *Int[B]) MulAssign(rhs Int[B]) {
	*x = x.Mul(rhs)
}

// The *ReportingOverflow methods mirror the base type's API. Overflow is
// absorbed by saturation, so the flag is always false.

func (x Int[B]) AddReportingOverflow(rhs Int[B]) (Int[B], bool) {
	return x.Add(rhs), false
}

func (x Int[B]) SubReportingOverflow(rhs Int[B]) (Int[B], bool) {
	return x.Sub(rhs), false
}

func (x Int[B]) MulReportingOverflow(rhs Int[B]) (Int[B], bool) {
	return x.Mul(rhs), false
}
