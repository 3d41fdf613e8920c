package arith

import (
	"fmt"
	"math"
	"math/big"
)

// BigInt is the kernel for *big.Int coefficients. Division and remainder
// truncate toward zero. There is no native square root, so the provider
// falls back to bisection.
type BigInt struct{}

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }
func (BigInt) Mod(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (BigInt) Abs(a *big.Int) *big.Int    { return new(big.Int).Abs(a) }
func (BigInt) Trunc(a *big.Int) *big.Int  { return new(big.Int).Set(a) }
func (BigInt) Clone(a *big.Int) *big.Int  { return new(big.Int).Set(a) }
func (BigInt) Equal(a, b *big.Int) bool   { return a.Cmp(b) == 0 }
func (BigInt) Cmp(a, b *big.Int) int      { return a.Cmp(b) }
func (BigInt) FromInt(n int64) *big.Int   { return big.NewInt(n) }
func (BigInt) Format(v *big.Int) string   { return v.String() }
func (BigInt) Bytes(v *big.Int) []byte    { return v.Append(nil, 10) }

// Pow yields 1 for a non-positive exponent, matching big.Int.Exp.
func (BigInt) Pow(base, exp *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, nil)
}

func (BigInt) Log(v *big.Int, base float64) *big.Int {
	f, _ := new(big.Float).SetInt(v).Float64()
	l := math.Log(f) / math.Log(base)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return new(big.Int)
	}
	r, _ := big.NewFloat(l).Int(nil)
	return r
}

func (BigInt) Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("big integer literal %q: invalid syntax", s)
	}
	return v, nil
}
