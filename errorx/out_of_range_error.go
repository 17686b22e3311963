package errorx

import "fmt"

// OutOfRangeErrorf creates an Error with type ErrorTypeOutOfRange and a formatted message
func OutOfRangeErrorf(format string, args ...any) error {
	return newWithStack(
		ErrorTypeOutOfRange,
		fmt.Sprintf(format, args...),
	)
}

func IsOutOfRange(e error) bool {
	return isOfType(e, ErrorTypeOutOfRange)
}
