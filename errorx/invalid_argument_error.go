package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidArgumentErrorf creates an Error with type ErrorTypeInvalidArgument and a formatted message
func InvalidArgumentErrorf(format string, args ...any) error {
	return newWithStack(
		ErrorTypeInvalidArgument,
		fmt.Sprintf(format, args...),
	)
}

// WrapInvalidArgument is InvalidArgumentErrorf keeping err as the original error.
func WrapInvalidArgument(err error, format string, args ...any) error {
	return errors.WithStack(Error{
		Type:          ErrorTypeInvalidArgument,
		Message:       fmt.Sprintf(format, args...),
		OriginalError: err,
	})
}

func IsInvalidArgumentError(e error) bool {
	return isOfType(e, ErrorTypeInvalidArgument)
}
