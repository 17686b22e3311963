package clampx

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/clampint/x/errorx"
	"github.com/clampint/x/mathx"
	"github.com/clampint/x/utilx"
)

// FromInt converts v to B, clamping values outside B's range to its bounds.
func FromInt[B, T mathx.Integer](v T) Int[B] {
	switch compareRange[B](v) {
	case -1:
		return Min[B]()
	case 1:
		return Max[B]()
	}
	return Int[B]{value: B(v)}
}

// FromFloat converts v to B, clamping values outside B's range to its bounds
// and truncating in-range values toward zero. NaN converts to zero.
func FromFloat[B mathx.Integer, T mathx.Float](v T) Int[B] {
	lo, hi := mathx.Limits[B]()
	switch {
	case math.IsNaN(float64(v)):
		return Int[B]{}
	case v < T(lo):
		return Int[B]{value: lo}
	case v >= T(hi):
		// T(hi) rounds up to a power of two for wide B, where B(v) would
		// be undefined.
		return Int[B]{value: hi}
	}
	return Int[B]{value: B(v)}
}

// Truncating converts v to B keeping only its low bits, like a Go conversion.
func Truncating[B, T mathx.Integer](v T) Int[B] {
	return Int[B]{value: B(v)}
}

// Exact converts v to B, failing with an out of range error when v is not
// representable. It is the runtime counterpart of New for values that are
// only known at runtime.
func Exact[B, T mathx.Integer](v T) (Int[B], error) {
	if compareRange[B](v) != 0 {
		return Int[B]{}, errorx.OutOfRangeErrorf("%d is out of range for %s", v, typeName[B]())
	}
	return Int[B]{value: B(v)}, nil
}

// MustExact is Exact but panics when v is not representable.
func MustExact[B, T mathx.Integer](v T) Int[B] {
	return utilx.Must(Exact[B](v))
}

// ExactFloat converts v to B when v is an integral value representable by B.
func ExactFloat[B mathx.Integer, T mathx.Float](v T) (Int[B], error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return Int[B]{}, errorx.OutOfRangeErrorf("%v is not an integer", v)
	}
	i, _ := big.NewFloat(f).Int(nil)
	if !mathx.FitsBig[B](i) {
		return Int[B]{}, errorx.OutOfRangeErrorf("%v is out of range for %s", v, typeName[B]())
	}
	return Int[B]{value: B(v)}, nil
}

// FromAny converts a dynamically typed value, such as a decoded config entry,
// with the clamping rules of FromInt and FromFloat. Text is read in base 10
// like Parse but clamped instead of rejected. Other values are coerced with
// cast first. A nil value is an invalid argument.
func FromAny[B mathx.Integer](v any) (Int[B], error) {
	switch n := v.(type) {
	case nil:
		return Int[B]{}, errorx.InvalidArgumentErrorf("cannot convert nil to %s", typeName[B]())
	case Int[B]:
		return n, nil
	case int:
		return FromInt[B](n), nil
	case int8:
		return FromInt[B](n), nil
	case int16:
		return FromInt[B](n), nil
	case int32:
		return FromInt[B](n), nil
	case int64:
		return FromInt[B](n), nil
	case uint:
		return FromInt[B](n), nil
	case uint8:
		return FromInt[B](n), nil
	case uint16:
		return FromInt[B](n), nil
	case uint32:
		return FromInt[B](n), nil
	case uint64:
		return FromInt[B](n), nil
	case uintptr:
		return FromInt[B](n), nil
	case float32:
		return FromFloat[B](n), nil
	case float64:
		return FromFloat[B](n), nil
	case string:
		return fromText[B](n)
	case []byte:
		return fromText[B](string(n))
	case json.Number:
		return fromText[B](string(n))
	}

	if i, err := cast.ToInt64E(v); err == nil {
		return FromInt[B](i), nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Int[B]{}, errorx.WrapInvalidArgument(err, "cannot convert %#v to %s", v, typeName[B]())
	}
	return FromFloat[B](f), nil
}

// fromText clamps decimal text. Integers too wide for 64 bits and fractional
// values go through the float path.
func fromText[B mathx.Integer](s string) (Int[B], error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt[B](i), nil
	}
	if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		return FromInt[B](u), nil
	}

	// ParseFloat also reads hex, inf, nan and underscores
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return Int[B]{}, errorx.InvalidArgumentErrorf("%q is not a valid %s", s, typeName[B]())
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Int[B]{}, errorx.WrapInvalidArgument(err, "%q is not a valid %s", s, typeName[B]())
	}
	return FromFloat[B](f), nil
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789.eE+-", r)
}

// compareRange returns -1 when v is below B's minimum, 1 when it is above
// B's maximum and 0 otherwise. Negative values are compared as int64 and
// non-negative ones as uint64, which holds every Go integer.
func compareRange[B, T mathx.Integer](v T) int {
	lo, hi := mathx.Limits[B]()
	if v < 0 {
		if int64(v) < int64(lo) {
			return -1
		}
		return 0
	}
	if uint64(v) > uint64(hi) {
		return 1
	}
	return 0
}

func typeName[B mathx.Integer]() string {
	var v B
	return fmt.Sprintf("%T", v)
}
