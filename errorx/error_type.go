package errorx

type ErrorType string

// Status names follow the gRPC status codes:
// https://chromium.googlesource.com/external/github.com/grpc/grpc/+/refs/tags/v1.21.4-pre1/doc/statuscodes.md

const (
	// Only useful to assert whether or not an error is an Error during cast
	ErrorTypeUnspecified     = ErrorType("")
	ErrorTypeInvalidArgument = ErrorType("INVALID_ARGUMENT")
	ErrorTypeOutOfRange      = ErrorType("OUT_OF_RANGE")
)

func (e ErrorType) String() string {
	return string(e)
}
