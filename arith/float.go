package arith

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Float is the kernel for float32 and float64 coefficients.
type Float[F constraints.Float] struct{}

func (Float[F]) Add(a, b F) F            { return a + b }
func (Float[F]) Sub(a, b F) F            { return a - b }
func (Float[F]) Mul(a, b F) F            { return a * b }
func (Float[F]) Div(a, b F) F            { return a / b }
func (Float[F]) Mod(a, b F) F            { return F(math.Mod(float64(a), float64(b))) }
func (Float[F]) Neg(a F) F               { return -a }
func (Float[F]) Abs(a F) F               { return F(math.Abs(float64(a))) }
func (Float[F]) Trunc(a F) F             { return F(math.Trunc(float64(a))) }
func (Float[F]) Pow(base, exp F) F       { return F(math.Pow(float64(base), float64(exp))) }
func (Float[F]) Log(v F, base float64) F { return F(math.Log(float64(v)) / math.Log(base)) }
func (Float[F]) Sqrt(v F) F              { return F(math.Sqrt(float64(v))) }
func (Float[F]) Equal(a, b F) bool       { return a == b }
func (Float[F]) FromInt(n int64) F       { return F(n) }
func (Float[F]) Clone(v F) F             { return v }

func (Float[F]) Cmp(a, b F) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float[F]) Parse(s string) (F, error) {
	var zero F
	f, err := strconv.ParseFloat(s, floatBits(zero))
	if err != nil {
		return 0, fmt.Errorf("float literal %q: %w", s, err)
	}
	return F(f), nil
}

// Format never uses exponent notation, so the text re-parses as one factor.
func (Float[F]) Format(v F) string {
	var zero F
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, floatBits(zero))
}

func (k Float[F]) Bytes(v F) []byte { return []byte(k.Format(v)) }

func floatBits[F constraints.Float](v F) int {
	if _, ok := any(v).(float32); ok {
		return 32
	}
	return 64
}
