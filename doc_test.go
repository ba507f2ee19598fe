package monadfn_test

import (
	"fmt"
	"strings"

	"github.com/KasperOmsK/monadfn"
)

// Example chains the three kinds of composition on the same input.
func Example() {
	// Plain composition: the last function runs first.
	plain := monadfn.Compose(monadfn.AddFive[int], monadfn.Square[int])
	fmt.Println("plain:", plain(3))

	// Debug composition keeps a trace of every step.
	traced := monadfn.ComposeDebug(monadfn.DebugAddFive[int], monadfn.DebugSquare[int])
	fmt.Println("debug:", traced(3))

	// Multi-value composition explores every branch.
	expanded := monadfn.ComposeMulti(monadfn.Digits[int], monadfn.FirstThreeMultiples[int])
	fmt.Println("multi:", expanded(12))

	// Output:
	// plain: 14
	// debug: 14 (3^2 = 9.9 + 5 = 14.)
	// multi: [1 2 2 4 3 6]
}

func ExampleCompose() {
	normalize := monadfn.Compose(strings.ToUpper, strings.TrimSpace)
	fmt.Printf("%q\n", normalize("  hello  "))

	identity := monadfn.Compose[string]()
	fmt.Printf("%q\n", identity("unchanged"))

	// Output:
	// "HELLO"
	// "unchanged"
}

func ExampleComposeDebug() {
	double := monadfn.DebugLift(monadfn.MapFunc[float64, float64](func(x float64) float64 {
		return x * 2
	}))

	pipeline := monadfn.ComposeDebug(monadfn.DebugSquare[float64], double, monadfn.DebugAddFive[float64])
	result := pipeline(0.5)

	fmt.Println(result.Value)
	fmt.Println(result.Message)

	// Output:
	// 121
	// 0.5 + 5 = 5.5.11^2 = 121.
}

func ExampleComposeMulti() {
	neighbours := monadfn.MultiFunc[int, int](func(x int) []int {
		return []int{x - 1, x + 1}
	})

	pipeline := monadfn.ComposeMulti(neighbours, neighbours)
	fmt.Println(pipeline(10))

	// Output:
	// [8 10 10 12]
}
