package clampx

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/clampint/x/errorx"
	"github.com/clampint/x/mathx"
)

// Parse reads a base 10 integer. Text is treated like a literal: a value
// outside B's range is an out of range error, not a clamped result.
func Parse[B mathx.Integer](s string) (Int[B], error) {
	w := mathx.BitWidth[B]()
	if mathx.IsSigned[B]() {
		v, err := strconv.ParseInt(s, 10, w)
		if err != nil {
			return Int[B]{}, parseError[B](s, err)
		}
		return Int[B]{value: B(v)}, nil
	}

	// ParseUint takes no sign, ParseInt takes an optional one
	digits := s
	if strings.HasPrefix(s, "+") {
		digits = s[1:]
	}
	v, err := strconv.ParseUint(digits, 10, w)
	if err != nil {
		// "-1" is a syntax error for ParseUint but a range error for us
		if strings.HasPrefix(s, "-") {
			n, serr := strconv.ParseInt(s, 10, 64)
			switch {
			case serr == nil && n == 0:
				return Int[B]{}, nil
			case serr == nil || errors.Is(serr, strconv.ErrRange):
				return Int[B]{}, parseError[B](s, strconv.ErrRange)
			}
		}
		return Int[B]{}, parseError[B](s, err)
	}
	return Int[B]{value: B(v)}, nil
}

func parseError[B mathx.Integer](s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return errorx.OutOfRangeErrorf("%s is out of range for %s", s, typeName[B]())
	}
	return errorx.WrapInvalidArgument(err, "%q is not a valid %s", s, typeName[B]())
}

func (x Int[B]) String() string {
	if mathx.IsSigned[B]() {
		return strconv.FormatInt(int64(x.value), 10)
	}
	return strconv.FormatUint(uint64(x.value), 10)
}

// Format lets fmt verbs (%x, %08d, ...) apply to the base value.
func (x Int[B]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		fmt.Fprint(f, x.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.value)
}

func (x Int[B]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int[B]) UnmarshalText(text []byte) error {
	v, err := Parse[B](string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a JSON number.
func (x Int[B]) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON accepts a JSON integer or a string holding one. null leaves
// x untouched.
func (x *Int[B]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errorx.InvalidArgumentErrorf("invalid JSON %q", data)
	}

	res := gjson.ParseBytes(data)
	switch res.Type {
	case gjson.Null:
		return nil
	case gjson.Number:
		return x.UnmarshalText([]byte(res.Raw))
	case gjson.String:
		return x.UnmarshalText([]byte(res.Str))
	default:
		return errorx.InvalidArgumentErrorf("cannot decode %s into %s", res.Raw, typeName[B]())
	}
}

// LogValue implements slog.LogValuer. The saturated flag tells clamped
// results apart in logs.
func (x Int[B]) LogValue() slog.Value {
	var v slog.Value
	if mathx.IsSigned[B]() {
		v = slog.Int64Value(int64(x.value))
	} else {
		v = slog.Uint64Value(uint64(x.value))
	}
	return slog.GroupValue(
		slog.Attr{Key: "value", Value: v},
		slog.Bool("saturated", x.IsSaturated()),
	)
}
