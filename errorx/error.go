package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a typed error. Constructors wrap it with a stack trace, use the
// Is* helpers rather than a type assertion to inspect it.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	OriginalError error `json:"-"`
}

var _ error = Error{}

func (e Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

func (e Error) Unwrap() error {
	return e.OriginalError
}

// AsError returns the Error carried by err, looking through stack wrappers.
func AsError(err error) (*Error, bool) {
	err = errors.Cause(err)
	e, ok := err.(Error)
	if !ok {
		return nil, false
	}

	if e.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return &e, true
}

func newWithStack(t ErrorType, msg string) error {
	return errors.WithStack(Error{
		Type:    t,
		Message: msg,
	})
}

func isOfType(err error, t ErrorType) bool {
	e, ok := AsError(err)
	if !ok {
		return false
	}

	return e.Type == t
}
