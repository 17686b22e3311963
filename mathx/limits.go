package mathx

import "unsafe"

// BitWidth returns the number of bits used to represent T.
func BitWidth[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Limits returns the smallest and largest values representable by T.
func Limits[T Integer]() (lo, hi T) {
	if !IsSigned[T]() {
		return 0, ^T(0)
	}
	// the sign bit alone is the two's complement minimum
	lo = T(1) << (BitWidth[T]() - 1)
	return lo, ^lo
}

// mask returns a uint64 with the low BitWidth[T]() bits set.
func mask[T Integer]() uint64 {
	return ^uint64(0) >> (64 - BitWidth[T]())
}

// Bits returns the two's complement bit pattern of v, zero-extended to 64 bits.
func Bits[T Integer](v T) uint64 {
	return uint64(v) & mask[T]()
}
