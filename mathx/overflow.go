package mathx

// The *ReportingOverflow functions return the wrapped result of the operation
// together with a flag telling whether the mathematical result fell outside
// the range of T. None of them relies on a type wider than T.

// AddReportingOverflow returns a+b and whether the addition overflowed.
func AddReportingOverflow[T Integer](a, b T) (T, bool) {
	sum := a + b
	// adding a positive value can only wrap downwards, a negative one upwards
	if b > 0 {
		return sum, sum < a
	}
	return sum, sum > a
}

// SubReportingOverflow returns a-b and whether the subtraction overflowed.
func SubReportingOverflow[T Integer](a, b T) (T, bool) {
	diff := a - b
	if b > 0 {
		return diff, diff > a
	}
	return diff, diff < a
}

// MulReportingOverflow returns a*b and whether the multiplication overflowed.
func MulReportingOverflow[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	product := a * b
	if IsSigned[T]() {
		lo, _ := Limits[T]()
		minusOne := ^T(0)
		// min / -1 wraps back to min, so the division check below cannot see it.
		if (a == minusOne && b == lo) || (b == minusOne && a == lo) {
			return product, true
		}
	}
	return product, product/a != b
}

// DivReportingOverflow returns a/b and whether the division overflowed.
// Dividing by zero reports (a, true). Dividing the signed minimum by -1
// reports (a, true).
func DivReportingOverflow[T Integer](a, b T) (T, bool) {
	if b == 0 || isMinByMinusOne(a, b) {
		return a, true
	}
	return a / b, false
}

// RemReportingOverflow returns a%b and whether the division overflowed.
// Dividing by zero reports (a, true). Dividing the signed minimum by -1
// reports (0, true).
func RemReportingOverflow[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return a, true
	}
	if isMinByMinusOne(a, b) {
		return 0, true
	}
	return a % b, false
}

func isMinByMinusOne[T Integer](a, b T) bool {
	if !IsSigned[T]() {
		return false
	}
	lo, _ := Limits[T]()
	return a == lo && b == ^T(0)
}
