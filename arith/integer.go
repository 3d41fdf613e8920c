package arith

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Signed is the kernel for Go's built-in signed integers. Division truncates
// toward zero; Pow, Log and Sqrt go through float64.
type Signed[I constraints.Signed] struct{}

func (Signed[I]) Add(a, b I) I         { return a + b }
func (Signed[I]) Sub(a, b I) I         { return a - b }
func (Signed[I]) Mul(a, b I) I         { return a * b }
func (Signed[I]) Div(a, b I) I         { return a / b }
func (Signed[I]) Mod(a, b I) I         { return a % b }
func (Signed[I]) Neg(a I) I            { return -a }
func (Signed[I]) Trunc(a I) I          { return a }
func (Signed[I]) Equal(a, b I) bool    { return a == b }
func (Signed[I]) FromInt(n int64) I    { return I(n) }
func (Signed[I]) Clone(v I) I          { return v }
func (Signed[I]) Format(v I) string    { return strconv.FormatInt(int64(v), 10) }
func (Signed[I]) Bytes(v I) []byte     { return strconv.AppendInt(nil, int64(v), 10) }
func (Signed[I]) Sqrt(v I) I           { return I(math.Sqrt(float64(v))) }
func (Signed[I]) Log(v I, b float64) I { return I(math.Log(float64(v)) / math.Log(b)) }

func (Signed[I]) Abs(a I) I {
	if a < 0 {
		return -a
	}
	return a
}

func (Signed[I]) Cmp(a, b I) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Pow is exact for non-negative exponents.
func (Signed[I]) Pow(base, exp I) I {
	if exp < 0 {
		return I(math.Pow(float64(base), float64(exp)))
	}
	result := I(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (Signed[I]) Parse(s string) (I, error) {
	var zero I
	n, err := strconv.ParseInt(s, 10, bitSize(zero))
	if err != nil {
		return 0, fmt.Errorf("integer literal %q: %w", s, err)
	}
	return I(n), nil
}

func bitSize[I constraints.Signed](v I) int {
	switch any(v).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	}
	return 64
}
