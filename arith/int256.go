package arith

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Int256 is the kernel for fixed-width 256-bit signed integers stored as
// two's complement uint256.Int values. Arithmetic wraps modulo 2^256.
// Division by zero yields zero, as in the EVM.
type Int256 struct{}

func (Int256) Add(a, b uint256.Int) (z uint256.Int) { z.Add(&a, &b); return }
func (Int256) Sub(a, b uint256.Int) (z uint256.Int) { z.Sub(&a, &b); return }
func (Int256) Mul(a, b uint256.Int) (z uint256.Int) { z.Mul(&a, &b); return }
func (Int256) Div(a, b uint256.Int) (z uint256.Int) { z.SDiv(&a, &b); return }
func (Int256) Mod(a, b uint256.Int) (z uint256.Int) { z.SMod(&a, &b); return }
func (Int256) Neg(a uint256.Int) (z uint256.Int)    { z.Neg(&a); return }
func (Int256) Abs(a uint256.Int) (z uint256.Int)    { z.Abs(&a); return }
func (Int256) Trunc(a uint256.Int) uint256.Int      { return a }
func (Int256) Clone(a uint256.Int) uint256.Int      { return a }
func (Int256) Equal(a, b uint256.Int) bool          { return a.Eq(&b) }
func (Int256) Bytes(v uint256.Int) []byte           { b := v.Bytes32(); return b[:] }

func (Int256) Log(v uint256.Int, base float64) uint256.Int {
	f, _ := new(big.Float).SetInt(toSignedBig(v)).Float64()
	l := math.Log(f) / math.Log(base)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return uint256.Int{}
	}
	return Int256{}.FromInt(int64(l))
}

func (Int256) Cmp(a, b uint256.Int) int {
	switch {
	case a.Slt(&b):
		return -1
	case a.Sgt(&b):
		return 1
	}
	return 0
}

func (Int256) FromInt(n int64) (z uint256.Int) {
	if n < 0 {
		z.SetUint64(uint64(-n))
		z.Neg(&z)
		return
	}
	z.SetUint64(uint64(n))
	return
}

// Pow yields zero for a negative exponent unless |base| is one.
func (k Int256) Pow(base, exp uint256.Int) (z uint256.Int) {
	if exp.Sign() < 0 {
		abs := k.Abs(base)
		if abs.IsUint64() && abs.Uint64() == 1 {
			if odd := k.Mod(exp, k.FromInt(2)); base.Sign() < 0 && !odd.IsZero() {
				return k.FromInt(-1)
			}
			return k.FromInt(1)
		}
		return
	}
	z.Exp(&base, &exp)
	return
}

func (Int256) Parse(s string) (z uint256.Int, err error) {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if digits == "" || strings.ContainsAny(digits, "+-") {
		return z, fmt.Errorf("int256 literal %q: invalid syntax", s)
	}
	if err = z.SetFromDecimal(digits); err != nil {
		return z, fmt.Errorf("int256 literal %q: %w", s, err)
	}
	if z.Sign() < 0 {
		return uint256.Int{}, fmt.Errorf("int256 literal %q: out of range", s)
	}
	if neg {
		z.Neg(&z)
	}
	return z, nil
}

func (Int256) Format(v uint256.Int) string {
	if v.Sign() < 0 {
		var m uint256.Int
		m.Neg(&v)
		return "-" + m.Dec()
	}
	return v.Dec()
}

func toSignedBig(v uint256.Int) *big.Int {
	if v.Sign() < 0 {
		var m uint256.Int
		m.Neg(&v)
		return new(big.Int).Neg(m.ToBig())
	}
	return v.ToBig()
}
