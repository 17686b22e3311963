package mathx

import "golang.org/x/exp/constraints"

// Integer is any fixed-width integer type, signed or unsigned.
type Integer interface {
	constraints.Integer
}

// Float is any floating-point type.
type Float interface {
	constraints.Float
}

type Number interface {
	Integer | Float
}

// Clamp returns the value of x clamped to the range [min, max].
func Clamp[N Number](x, min, max N) N {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
