package arith

import (
	"fmt"
	"math"
	"math/big"
)

// BigRat is the exact rational kernel. Whole values format as integers and
// the rest as "n/d", both of which re-parse.
type BigRat struct{}

func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (BigRat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (BigRat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (BigRat) Abs(a *big.Rat) *big.Rat    { return new(big.Rat).Abs(a) }
func (BigRat) Clone(a *big.Rat) *big.Rat  { return new(big.Rat).Set(a) }
func (BigRat) Equal(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }
func (BigRat) Cmp(a, b *big.Rat) int      { return a.Cmp(b) }
func (BigRat) FromInt(n int64) *big.Rat   { return new(big.Rat).SetInt64(n) }
func (k BigRat) Bytes(v *big.Rat) []byte  { return []byte(k.Format(v)) }

// Trunc rounds toward zero.
func (BigRat) Trunc(a *big.Rat) *big.Rat {
	q := new(big.Int).Quo(a.Num(), a.Denom())
	return new(big.Rat).SetInt(q)
}

// Mod is a - b*trunc(a/b).
func (k BigRat) Mod(a, b *big.Rat) *big.Rat {
	q := k.Trunc(k.Div(a, b))
	return k.Sub(a, k.Mul(b, q))
}

// Pow is exact for whole exponents; fractional exponents go through float64.
func (k BigRat) Pow(base, exp *big.Rat) *big.Rat {
	if exp.IsInt() && exp.Num().IsInt64() {
		e := exp.Num().Int64()
		neg := e < 0
		if neg {
			e = -e
		}
		num := new(big.Int).Exp(base.Num(), big.NewInt(e), nil)
		den := new(big.Int).Exp(base.Denom(), big.NewInt(e), nil)
		if neg {
			num, den = den, num
		}
		return new(big.Rat).SetFrac(num, den)
	}
	b, _ := base.Float64()
	e, _ := exp.Float64()
	return ratFromFloat(math.Pow(b, e))
}

func (BigRat) Log(v *big.Rat, base float64) *big.Rat {
	f, _ := v.Float64()
	return ratFromFloat(math.Log(f) / math.Log(base))
}

func (BigRat) Parse(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("rational literal %q: invalid syntax", s)
	}
	return v, nil
}

func (BigRat) Format(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	return v.String()
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return new(big.Rat)
	}
	return r
}
