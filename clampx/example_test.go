package clampx_test

import (
	"fmt"

	"github.com/clampint/x/clampx"
)

func Example() {
	hp := clampx.New[uint8](250)
	hp.AddAssign(clampx.New[uint8](10))
	fmt.Println(hp, hp.IsSaturated())

	hp.SubAssign(clampx.New[uint8](255))
	fmt.Println(hp)
	// Output:
	// 255 true
	// 0
}

func ExampleInt_Mul() {
	lo, hi := clampx.Min[int8](), clampx.Max[int8]()
	minusOne := clampx.New[int8](-1)

	fmt.Println(lo.Mul(minusOne))
	fmt.Println(hi.Mul(minusOne))
	// Output:
	// 127
	// -127
}

func ExampleInt_Div() {
	// division is not saturated
	fmt.Println(clampx.Min[int8]().Div(clampx.New[int8](-1)))
	// Output: -128
}

func ExampleFromInt() {
	fmt.Println(clampx.FromInt[int8](int16(32767)))
	fmt.Println(clampx.FromInt[int8](int16(-32768)))
	fmt.Println(clampx.FromInt[uint8](-5))
	// Output:
	// 127
	// -128
	// 0
}

func ExampleFromFloat() {
	fmt.Println(clampx.FromFloat[int16](-12.7))
	fmt.Println(clampx.FromFloat[int16](1e10))
	// Output:
	// -12
	// 32767
}

func ExampleExact() {
	_, err := clampx.Exact[int8](200)
	fmt.Println(err)
	// Output: [OUT_OF_RANGE] 200 is out of range for int8
}

func ExampleSum() {
	scores := []clampx.Int[int8]{clampx.New[int8](100), clampx.New[int8](100), clampx.New[int8](-50)}
	fmt.Println(clampx.Sum(scores...))
	// Output: 77
}
