package monadfn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/KasperOmsK/monadfn/internal/iterx"
	"golang.org/x/exp/constraints"
)

// Number is the set of types the arithmetic stages accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// AddFive returns x + 5.
func AddFive[T Number](x T) T {
	return x + 5
}

// Square returns x * x.
func Square[T Number](x T) T {
	return x * x
}

// DebugAddFive adds 5 to x and reports "x + 5 = result.".
func DebugAddFive[T Number](x T) Debug[T] {
	next := AddFive(x)
	return Debug[T]{
		Value:   next,
		Message: fmt.Sprintf("%s + 5 = %s.", formatNumber(x), formatNumber(next)),
	}
}

// DebugSquare squares x and reports "x^2 = result.".
func DebugSquare[T Number](x T) Debug[T] {
	next := Square(x)
	return Debug[T]{
		Value:   next,
		Message: fmt.Sprintf("%s^2 = %s.", formatNumber(x), formatNumber(next)),
	}
}

// FirstThreeMultiples returns [x, 2x, 3x].
func FirstThreeMultiples[T Number](x T) []T {
	return []T{x, x * 2, x * 3}
}

// Digits returns the base-10 digits of x in the order they are printed.
//
// x is formatted like the debug stages format it, and every rune that is
// not an ASCII digit is dropped before conversion, so signs, decimal points
// and exponent markers are ignored:
//
//	Digits(-305)   // [3 0 5]
//	Digits(1.5)    // [1 5]
//	Digits(1e21)   // [1 2 1] ("1e+21")
//	Digits(1e-7)   // [1 7] ("1e-7")
//	Digits(NaN)    // []
func Digits[T Number](x T) []T {
	runes := iterx.FromSlice([]rune(formatNumber(x)))
	digits := iterx.Filter[rune](runes, Not(Predicate[rune](isNonDigit)))

	return iterx.Collect(iterx.Map(digits, func(r rune) T {
		return T(r - '0')
	}))
}

func isNonDigit(r rune) bool {
	return r < '0' || r > '9'
}

// formatNumber prints integers in base 10 and floats in fixed-point
// notation, switching to exponent notation outside [1e-6, 1e21). Exponents
// carry no leading zeros: 1e-7, not 1e-07.
func formatNumber[T Number](x T) string {
	if T(1)/T(2) == 0 {
		return fmt.Sprint(x)
	}

	bitSize := int(unsafe.Sizeof(x)) * 8
	f := float64(x)
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return trimExponent(strconv.FormatFloat(f, 'g', -1, bitSize))
}

// trimExponent drops the zero padding strconv puts on one-digit exponents.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+3 >= len(s) || s[i+2] != '0' {
		return s
	}
	return s[:i+2] + s[i+3:]
}
