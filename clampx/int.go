// Package clampx provides Int, a fixed-width integer that never overflows.
//
// Addition, subtraction and multiplication saturate: a result that does not
// fit in the base type is replaced by the base type's minimum or maximum.
//
//	a := clampx.Max[int8]()
//	a.Add(clampx.New[int8](1)) == a // true
//
// Every other operation (bitwise, shifts, comparison, division, remainder)
// behaves exactly as it does on the base type. Division in particular is not
// saturated: dividing by zero panics and the signed minimum divided by -1 is
// the minimum, as in plain Go.
package clampx

import "github.com/clampint/x/mathx"

// Int wraps a B and saturates on +, - and *. The zero value is 0.
type Int[B mathx.Integer] struct {
	value B
}

// New returns v as a clamped integer. Passing an untyped constant that does
// not fit in B is a compile error, so a literal is never silently clamped:
//
//	clampx.New[int8](127) // ok
//	clampx.New[int8](128) // does not compile
func New[B mathx.Integer](v B) Int[B] {
	return Int[B]{value: v}
}

func Zero[B mathx.Integer]() Int[B] {
	return Int[B]{}
}

// Min returns the smallest value of B.
func Min[B mathx.Integer]() Int[B] {
	lo, _ := mathx.Limits[B]()
	return Int[B]{value: lo}
}

// Max returns the largest value of B.
func Max[B mathx.Integer]() Int[B] {
	_, hi := mathx.Limits[B]()
	return Int[B]{value: hi}
}

// Value returns the underlying base value.
func (x Int[B]) Value() B {
	return x.value
}

// Int64 converts the value with Go conversion rules.
func (x Int[B]) Int64() int64 {
	return int64(x.value)
}

// Uint64 converts the value with Go conversion rules.
func (x Int[B]) Uint64() uint64 {
	return uint64(x.value)
}

func (x Int[B]) Float64() float64 {
	return float64(x.value)
}

// IsSaturated reports whether x sits on one of the bounds of B. Saturating
// operations give no other signal that clamping happened.
func (x Int[B]) IsSaturated() bool {
	lo, hi := mathx.Limits[B]()
	return x.value == lo || x.value == hi
}

// Clamp returns x limited to [lo, hi].
func (x Int[B]) Clamp(lo, hi Int[B]) Int[B] {
	return Int[B]{value: mathx.Clamp(x.value, lo.value, hi.value)}
}
