package assertx

import (
	"cmp"
	"fmt"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// Equal compares with go-cmp so values with unexported fields can be compared
// through their Equal method and reported with a readable diff.
func Equal(t assert.TestingT, expected interface{}, actual interface{}, opts ...gocmp.Option) (ok bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !gocmp.Equal(expected, actual, opts...) {
		t.Errorf("Not equal: \n%s", gocmp.Diff(expected, actual, opts...))
		return false
	}

	return true
}

// InRange asserts lo <= v <= hi.
func InRange[T cmp.Ordered](t assert.TestingT, v, lo, hi T, args ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if v < lo || v > hi {
		return assert.Fail(t, fmt.Sprintf("%v is not in [%v, %v]", v, lo, hi), args...)
	}
	return true
}
