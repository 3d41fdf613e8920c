package arith

import (
	"fmt"
	"strings"
)

// Provider is the resolved, read-only operation table for one coefficient type.
// Build it once with New and share it; every method is safe for concurrent use.
type Provider[T any] struct {
	name    string
	k       Kernel[T]
	cmp     func(a, b T) int
	sqrt    func(v T) T
	complex bool

	MinusOne T
	Zero     T
	One      T
	Two      T
}

// New resolves the operation table for kernel k. It fails when the kernel
// offers neither a natural order nor a complex-like split, or when the
// well-known constants cannot be parsed, so a bad coefficient type is caught
// at setup rather than deep inside an arithmetic chain.
func New[T any](name string, k Kernel[T]) (*Provider[T], error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel for %s", ErrUnsupported, name)
	}
	p := &Provider[T]{name: name, k: k}

	switch kk := any(k).(type) {
	case Complex[T]:
		p.complex = true
		p.cmp = SignedMagnitude(kk)
	case Ordered[T]:
		p.cmp = kk.Cmp
	default:
		return nil, fmt.Errorf("%w: %s has no comparison", ErrUnsupported, name)
	}

	if r, ok := any(k).(Rooter[T]); ok {
		p.sqrt = r.Sqrt
	} else {
		p.sqrt = p.bisectSqrt
	}

	consts := []struct {
		text string
		dst  *T
	}{{"-1", &p.MinusOne}, {"0", &p.Zero}, {"1", &p.One}, {"2", &p.Two}}
	for _, c := range consts {
		v, err := k.Parse(c.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s cannot parse constant %q: %v", ErrUnsupported, name, c.text, err)
		}
		*c.dst = v
	}
	return p, nil
}

// MustNew is New that panics on a setup error.
func MustNew[T any](name string, k Kernel[T]) *Provider[T] {
	p, err := New(name, k)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Provider[T]) Name() string    { return p.name }
func (p *Provider[T]) IsComplex() bool { return p.complex }
func (p *Provider[T]) Kernel() Kernel[T] {
	return p.k
}

// ============================================================
// Arithmetic
// ============================================================

func (p *Provider[T]) Add(a, b T) T         { return p.k.Add(a, b) }
func (p *Provider[T]) Sub(a, b T) T         { return p.k.Sub(a, b) }
func (p *Provider[T]) Mul(a, b T) T         { return p.k.Mul(a, b) }
func (p *Provider[T]) Div(a, b T) T         { return p.k.Div(a, b) }
func (p *Provider[T]) Mod(a, b T) T         { return p.k.Mod(a, b) }
func (p *Provider[T]) Neg(a T) T            { return p.k.Neg(a) }
func (p *Provider[T]) Abs(a T) T            { return p.k.Abs(a) }
func (p *Provider[T]) Trunc(a T) T          { return p.k.Trunc(a) }
func (p *Provider[T]) Pow(base, exp T) T    { return p.k.Pow(base, exp) }
func (p *Provider[T]) Log(v T, b float64) T { return p.k.Log(v, b) }
func (p *Provider[T]) Increment(a T) T      { return p.k.Add(a, p.One) }
func (p *Provider[T]) Decrement(a T) T      { return p.k.Sub(a, p.One) }
func (p *Provider[T]) Sqrt(v T) T           { return p.sqrt(v) }
func (p *Provider[T]) FromInt(n int) T      { return p.k.FromInt(int64(n)) }
func (p *Provider[T]) Clone(v T) T          { return p.k.Clone(v) }
func (p *Provider[T]) Bytes(v T) []byte     { return p.k.Bytes(v) }

// PowInt raises base to an integer power by repeated squaring.
// A negative exponent yields One / base^-exp.
func (p *Provider[T]) PowInt(base T, exp int) T {
	if exp < 0 {
		return p.k.Div(p.One, p.PowInt(base, -exp))
	}
	result := p.One
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = p.k.Mul(result, b)
		}
		exp >>= 1
		if exp > 0 {
			b = p.k.Mul(b, b)
		}
	}
	return result
}

// ============================================================
// Comparison
// ============================================================

// Compare ranks a and b with the type's natural order, or with
// SignedMagnitude for complex-like types.
func (p *Provider[T]) Compare(a, b T) int         { return p.cmp(a, b) }
func (p *Provider[T]) Equal(a, b T) bool          { return p.k.Equal(a, b) }
func (p *Provider[T]) GreaterThan(a, b T) bool    { return p.cmp(a, b) > 0 }
func (p *Provider[T]) LessThan(a, b T) bool       { return p.cmp(a, b) < 0 }
func (p *Provider[T]) GreaterOrEqual(a, b T) bool { return p.GreaterThan(a, b) || p.Equal(a, b) }
func (p *Provider[T]) LessOrEqual(a, b T) bool    { return p.LessThan(a, b) || p.Equal(a, b) }
func (p *Provider[T]) IsZero(a T) bool            { return p.k.Equal(a, p.Zero) }

// Sign returns -1, 0 or +1.
func (p *Provider[T]) Sign(v T) int {
	switch {
	case p.GreaterThan(v, p.Zero):
		return 1
	case p.LessThan(v, p.Zero):
		return -1
	}
	return 0
}

func (p *Provider[T]) Max(a, b T) T {
	if p.GreaterOrEqual(a, b) {
		return a
	}
	return b
}

// ============================================================
// Conversion
// ============================================================

func (p *Provider[T]) Parse(s string) (T, error) { return p.k.Parse(s) }

// Format renders v canonically: trailing fractional zeros and a bare
// trailing decimal point are trimmed.
func (p *Provider[T]) Format(v T) string {
	return trimFraction(p.k.Format(v))
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") || strings.ContainsAny(s, "()<>eE") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ============================================================
// Number theory helpers
// ============================================================

// GCD reduces |a| and |b| by repeated remainder until one reaches zero.
func (p *Provider[T]) GCD(a, b T) T {
	l, r := p.k.Abs(a), p.k.Abs(b)
	for !p.IsZero(l) && !p.IsZero(r) {
		if p.GreaterThan(l, r) {
			l = p.k.Mod(l, r)
		} else {
			r = p.k.Mod(r, l)
		}
	}
	return p.Max(l, r)
}

// GCDOf folds GCD over values. It returns Zero for no values.
func (p *Provider[T]) GCDOf(values ...T) T {
	if len(values) == 0 {
		return p.Zero
	}
	g := p.k.Abs(values[0])
	for _, v := range values[1:] {
		g = p.GCD(g, v)
	}
	return g
}

// Divisors lists the positive divisors of |trunc(n)| in ascending order.
// Zero has none.
func (p *Provider[T]) Divisors(n T) []T {
	m := p.k.Abs(p.k.Trunc(n))
	if p.IsZero(m) {
		return nil
	}
	var low, high []T
	for i := p.One; p.LessOrEqual(p.k.Mul(i, i), m); i = p.Increment(i) {
		if !p.IsZero(p.k.Mod(m, i)) {
			continue
		}
		low = append(low, i)
		q := p.k.Div(m, i)
		if !p.Equal(q, i) {
			high = append(high, q)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// bisectSqrt is the square root used when the kernel has none. It narrows
// [0, |n|] by bisection and returns the floor bound once the bracket collapses.
func (p *Provider[T]) bisectSqrt(n T) T {
	if p.IsZero(n) {
		return p.Zero
	}
	if p.Equal(n, p.One) {
		return p.One
	}
	var mid, sq T = p.Zero, p.Zero
	low, high := p.Zero, p.k.Abs(n)
	for p.GreaterThan(high, p.Increment(low)) {
		mid = p.k.Div(p.k.Add(high, low), p.Two)
		sq = p.k.Mul(mid, mid)
		c := p.cmp(n, sq)
		if c < 0 {
			high = mid
		} else if c > 0 {
			low = mid
		} else {
			return mid
		}
	}
	return low
}
