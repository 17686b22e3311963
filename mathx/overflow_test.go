package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingOverflowExhaustive(t *testing.T) {
	t.Parallel()

	// Every pair of 8-bit operands is checked against the same operation in int.
	t.Run("int8", func(t *testing.T) {
		for a := math.MinInt8; a <= math.MaxInt8; a++ {
			for b := math.MinInt8; b <= math.MaxInt8; b++ {
				checkAgainstWide(t, int8(a), int8(b), a+b, AddReportingOverflow[int8], "add")
				checkAgainstWide(t, int8(a), int8(b), a-b, SubReportingOverflow[int8], "sub")
				checkAgainstWide(t, int8(a), int8(b), a*b, MulReportingOverflow[int8], "mul")
			}
		}
	})

	t.Run("uint8", func(t *testing.T) {
		for a := 0; a <= math.MaxUint8; a++ {
			for b := 0; b <= math.MaxUint8; b++ {
				checkAgainstWide(t, uint8(a), uint8(b), a+b, AddReportingOverflow[uint8], "add")
				checkAgainstWide(t, uint8(a), uint8(b), a-b, SubReportingOverflow[uint8], "sub")
				checkAgainstWide(t, uint8(a), uint8(b), a*b, MulReportingOverflow[uint8], "mul")
			}
		}
	})
}

func checkAgainstWide[T int8 | uint8](t *testing.T, a, b T, wide int, op func(T, T) (T, bool), name string) {
	t.Helper()
	lo, hi := Limits[T]()
	got, overflow := op(a, b)
	wantOverflow := wide < int(lo) || wide > int(hi)
	require.Equal(t, wantOverflow, overflow, "%s(%d, %d)", name, a, b)
	require.Equal(t, T(wide), got, "%s(%d, %d) partial value", name, a, b)
}

func TestReportingOverflow64(t *testing.T) {
	t.Parallel()

	t.Run("should detect addition overflow", func(t *testing.T) {
		_, overflow := AddReportingOverflow(int64(math.MaxInt64), 1)
		assert.True(t, overflow)
		_, overflow = AddReportingOverflow(int64(math.MinInt64), -1)
		assert.True(t, overflow)
		v, overflow := AddReportingOverflow(int64(math.MaxInt64), math.MinInt64)
		assert.False(t, overflow)
		assert.Equal(t, int64(-1), v)
		_, overflow = AddReportingOverflow(uint64(math.MaxUint64), 1)
		assert.True(t, overflow)
	})

	t.Run("should detect subtraction overflow", func(t *testing.T) {
		_, overflow := SubReportingOverflow(int64(math.MinInt64), 1)
		assert.True(t, overflow)
		_, overflow = SubReportingOverflow(int64(0), math.MinInt64)
		assert.True(t, overflow)
		v, overflow := SubReportingOverflow(int64(-1), math.MinInt64)
		assert.False(t, overflow)
		assert.Equal(t, int64(math.MaxInt64), v)
		_, overflow = SubReportingOverflow(uint64(0), 1)
		assert.True(t, overflow)
	})

	t.Run("should detect multiplication overflow", func(t *testing.T) {
		_, overflow := MulReportingOverflow(int64(math.MinInt64), -1)
		assert.True(t, overflow)
		_, overflow = MulReportingOverflow(int64(-1), math.MinInt64)
		assert.True(t, overflow)
		v, overflow := MulReportingOverflow(int64(math.MaxInt64), -1)
		assert.False(t, overflow)
		assert.Equal(t, int64(math.MinInt64+1), v)
		_, overflow = MulReportingOverflow(int64(1<<32), 1<<31)
		assert.True(t, overflow)
		v, overflow = MulReportingOverflow(int64(1<<32), -(1 << 31))
		assert.False(t, overflow)
		assert.Equal(t, int64(math.MinInt64), v)
		_, overflow = MulReportingOverflow(uint64(1<<32), 1<<32)
		assert.True(t, overflow)
	})
}

func TestDivReportingOverflow(t *testing.T) {
	t.Parallel()

	t.Run("should report division by zero", func(t *testing.T) {
		v, overflow := DivReportingOverflow(int8(7), 0)
		assert.True(t, overflow)
		assert.Equal(t, int8(7), v)

		r, overflow := RemReportingOverflow(uint8(7), 0)
		assert.True(t, overflow)
		assert.Equal(t, uint8(7), r)
	})

	t.Run("should report the signed minimum divided by minus one", func(t *testing.T) {
		v, overflow := DivReportingOverflow(int8(math.MinInt8), -1)
		assert.True(t, overflow)
		assert.Equal(t, int8(math.MinInt8), v)

		r, overflow := RemReportingOverflow(int8(math.MinInt8), -1)
		assert.True(t, overflow)
		assert.Equal(t, int8(0), r)
	})

	t.Run("should divide otherwise", func(t *testing.T) {
		v, overflow := DivReportingOverflow(int16(-7), 2)
		assert.False(t, overflow)
		assert.Equal(t, int16(-3), v)

		r, overflow := RemReportingOverflow(int16(-7), 2)
		assert.False(t, overflow)
		assert.Equal(t, int16(-1), r)

		u, overflow := DivReportingOverflow(uint8(255), 255)
		assert.False(t, overflow)
		assert.Equal(t, uint8(1), u)
	})
}
