package gopoly

import "fmt"

// ============================================================
// Division
// ============================================================

// Divide returns the quotient a / b; the remainder is discarded.
//
// When at most one symbol appears across a and b this is schoolbook long
// division, and a divisor of higher degree than a leaves a unchanged.
// Otherwise each term of b is divided into the terms of a it shares a
// factor with. That regime is a structural shortcut rather than true
// multivariate division and can return a partial quotient.
func Divide[T any](a, b *Polynomial[T]) (*Polynomial[T], error) {
	mustPoly(a, b)
	if b.IsZero() {
		return nil, fmt.Errorf("%w: division by the zero polynomial", ErrArgument)
	}
	if sym, ok := univariateSymbol(a, b); ok {
		return longDivide(a, b, sym), nil
	}
	return divideShared(a, b), nil
}

func longDivide[T any](a, b *Polynomial[T], sym rune) *Polynomial[T] {
	p := a.p
	if b.Degree() > a.Degree() {
		return a.Clone()
	}
	rem := a.Coefficients()
	div := b.Coefficients()
	bd := b.Degree()
	n := a.Degree() - bd + 1
	quot := make([]T, n)
	lead := div[bd]
	for i := n - 1; i >= 0; i-- {
		quot[i] = p.Div(rem[bd+i], lead)
		rem[bd+i] = p.Zero
		for j := bd + i - 1; j >= i; j-- {
			rem[j] = p.Sub(rem[j], p.Mul(quot[i], div[j-i]))
		}
	}
	return fromDense(p, sym, quot)
}

func divideShared[T any](a, b *Polynomial[T]) *Polynomial[T] {
	p := a.p
	left := a.Terms()
	var out []Term[T]
	for _, r := range b.terms {
		var rest []Term[T]
		for _, l := range left {
			if !ShareCommonFactor(l, r) {
				rest = append(rest, l)
				continue
			}
			q := DivideTerms(l, r)
			if !q.IsZero() && indexEqual(out, q) < 0 {
				out = append(out, q)
			}
		}
		left = rest
	}
	return NewPolynomial(p, out...)
}
