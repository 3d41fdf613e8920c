package arith

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// SignedMagnitude orders complex-like values by |z|, negated when the real
// part is negative. It gives complex coefficients a deterministic rank for
// canonical ordering and root-candidate sorting; it is not an arithmetic order.
func SignedMagnitude[T any](c Complex[T]) func(a, b T) int {
	key := func(v T) float64 {
		m := c.Modulus(v)
		if c.RealSign(v) < 0 {
			return -m
		}
		return m
	}
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	}
}

// ToBracketNotation rewrites "(re, im)" literals as "<re; im>".
func ToBracketNotation(s string) string {
	return strings.NewReplacer("(", "<", ")", ">", ",", ";").Replace(s)
}

// ToTupleNotation rewrites "<re; im>" literals as "(re, im)".
func ToTupleNotation(s string) string {
	return strings.NewReplacer("<", "(", ">", ")", ";", ",").Replace(s)
}

// Complex128 is the kernel for complex128 coefficients. Literals use the
// tuple form "(re, im)"; "<re; im>" and bare reals are accepted on input.
type Complex128 struct{}

func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Sub(a, b complex128) complex128 { return a - b }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }
func (Complex128) Div(a, b complex128) complex128 { return a / b }
func (Complex128) Neg(a complex128) complex128    { return -a }
func (Complex128) Abs(a complex128) complex128    { return complex(cmplx.Abs(a), 0) }
func (Complex128) Equal(a, b complex128) bool     { return a == b }
func (Complex128) FromInt(n int64) complex128     { return complex(float64(n), 0) }
func (Complex128) Clone(v complex128) complex128  { return v }
func (Complex128) Sqrt(v complex128) complex128   { return cmplx.Sqrt(v) }
func (Complex128) Modulus(v complex128) float64   { return cmplx.Abs(v) }

// Mod takes the remainder of the real and imaginary parts independently.
func (Complex128) Mod(a, b complex128) complex128 {
	re, im := 0.0, 0.0
	if real(b) != 0 {
		re = math.Mod(real(a), real(b))
	}
	if imag(b) != 0 {
		im = math.Mod(imag(a), imag(b))
	}
	return complex(re, im)
}

func (Complex128) Trunc(a complex128) complex128 {
	return complex(math.Trunc(real(a)), math.Trunc(imag(a)))
}

func (Complex128) Pow(base, exp complex128) complex128 {
	if exp == 0 {
		return 1
	}
	return cmplx.Pow(base, exp)
}

func (Complex128) Log(v complex128, base float64) complex128 {
	return cmplx.Log(v) / complex(math.Log(base), 0)
}

func (Complex128) RealSign(v complex128) int {
	switch r := real(v); {
	case r < 0:
		return -1
	case r > 0:
		return 1
	}
	return 0
}

func (Complex128) Parse(s string) (complex128, error) {
	in := strings.Join(strings.Fields(ToTupleNotation(s)), "")
	if in == "" {
		return 0, fmt.Errorf("complex literal is empty")
	}
	parts := strings.FieldsFunc(in, func(r rune) bool { return r == '(' || r == ')' || r == ',' })
	if len(parts) == 0 || len(parts) > 2 {
		return 0, fmt.Errorf("complex literal %q: want (re, im)", s)
	}
	re, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("complex literal %q: %w", s, err)
	}
	im := 0.0
	if len(parts) == 2 {
		if im, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return 0, fmt.Errorf("complex literal %q: %w", s, err)
		}
	}
	return complex(re, im), nil
}

func (Complex128) Format(v complex128) string {
	return "(" + formatFloat(real(v)) + ", " + formatFloat(imag(v)) + ")"
}

func (k Complex128) Bytes(v complex128) []byte {
	return []byte(k.Format(v))
}

// formatFloat renders f without an exponent so the result re-parses as a
// single coefficient literal.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
