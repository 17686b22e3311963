package clampx

import (
	"github.com/samber/lo"

	"github.com/clampint/x/mathx"
)

// Sum adds xs from left to right with saturating addition. Once a bound is
// hit the result depends on the order of xs: Sum(Max, 1, -1) is Max-1 while
// Sum(1, -1, Max) is Max.
func Sum[B mathx.Integer](xs ...Int[B]) Int[B] {
	return lo.Reduce(xs, func(acc Int[B], x Int[B], _ int) Int[B] {
		return acc.Add(x)
	}, Zero[B]())
}

// Product multiplies xs from left to right with saturating multiplication.
// The product of no values is 1.
func Product[B mathx.Integer](xs ...Int[B]) Int[B] {
	return lo.Reduce(xs, func(acc Int[B], x Int[B], _ int) Int[B] {
		return acc.Mul(x)
	}, Int[B]{value: 1})
}
