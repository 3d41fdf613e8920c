package gopoly

import (
	"fmt"
	"sort"

	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// Factoring and GCD
// ============================================================

// FactorResult holds the result of a factoring attempt. The input equals
// the product of Factors and Remainder. Complete is false when a non-constant
// remainder had no rational root left to extract.
type FactorResult[T any] struct {
	Factors   []*Polynomial[T]
	Remainder *Polynomial[T]
	Complete  bool
}

// Factor splits a univariate polynomial into its coefficient content and
// linear factors with rational roots. Irreducible content that remains is
// dropped; use FactorDetailed to see it.
func Factor[T any](a *Polynomial[T]) ([]*Polynomial[T], error) {
	res, err := FactorDetailed(a)
	if err != nil {
		return nil, err
	}
	return res.Factors, nil
}

// FactorDetailed applies the rational root theorem repeatedly.
//
// The content (GCD of the coefficients) is extracted first when it exceeds 1,
// then one X factor per missing low-order power. Each remaining root n/d is
// found among the reduced candidates ±(divisor of the constant term) /
// (divisor of the leading coefficient), tried by ascending magnitude with the
// positive root first, and yields the factor d*X - n.
func FactorDetailed[T any](a *Polynomial[T]) (FactorResult[T], error) {
	mustPoly(a)
	p := a.p
	sym, ok := univariateSymbol(a)
	if !ok {
		return FactorResult[T]{}, fmt.Errorf("%w: factoring a multivariate polynomial", ErrUnsupported)
	}
	rest := a.Clone()
	if !rest.HasVariables() {
		return FactorResult[T]{Remainder: rest, Complete: true}, nil
	}

	var factors []*Polynomial[T]
	divideOut := func(f *Polynomial[T]) {
		rest = longDivide(rest, f, sym)
		factors = append(factors, f)
	}

	coeffs := make([]T, 0, rest.Len())
	for _, t := range rest.terms {
		coeffs = append(coeffs, t.coef)
	}
	if content := p.GCDOf(coeffs...); p.GreaterThan(content, p.One) {
		divideOut(Constant(p, content))
	}
	for rest.Degree() > 0 && p.IsZero(rest.ConstantCoefficient()) {
		divideOut(Monomial(p, p.One, Var(sym, 1)))
	}

	for rest.Degree() > 0 {
		dense := rest.Coefficients()
		found := false
		for _, c := range rootCandidates(p, dense[0], dense[len(dense)-1]) {
			if !isRoot(p, dense, c.num, c.den) {
				continue
			}
			divideOut(NewPolynomial(p,
				NewTerm(p, c.den, Var(sym, 1)),
				ConstantTerm(p, p.Neg(c.num)),
			))
			found = true
			break
		}
		if !found {
			break
		}
	}
	return FactorResult[T]{Factors: factors, Remainder: rest, Complete: rest.Degree() == 0}, nil
}

type candidate[T any] struct{ num, den T }

func rootCandidates[T any](p *arith.Provider[T], constant, lead T) []candidate[T] {
	var out []candidate[T]
	for _, n := range p.Divisors(constant) {
		for _, d := range p.Divisors(lead) {
			if !p.Equal(p.GCD(n, d), p.One) {
				continue
			}
			out = append(out, candidate[T]{n, d}, candidate[T]{p.Neg(n), d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		// |ni/di| < |nj/dj| without leaving the coefficient type.
		l := p.Mul(p.Abs(out[i].num), out[j].den)
		r := p.Mul(p.Abs(out[j].num), out[i].den)
		if c := p.Compare(l, r); c != 0 {
			return c < 0
		}
		return p.Sign(out[i].num) > p.Sign(out[j].num)
	})
	return out
}

// isRoot tests coeffs(n/d) = 0 as sum c_i * n^i * d^(deg-i) = 0, which stays
// exact for integer coefficient types.
func isRoot[T any](p *arith.Provider[T], coeffs []T, n, d T) bool {
	deg := len(coeffs) - 1
	sum := p.Zero
	for i, c := range coeffs {
		if p.IsZero(c) {
			continue
		}
		sum = p.Add(sum, p.Mul(c, p.Mul(p.PowInt(n, i), p.PowInt(d, deg-i))))
	}
	return p.IsZero(sum)
}

// maxGCDIterations bounds the multivariate mutual-division loop.
var maxGCDIterations = 64

// GCD returns a greatest common divisor of a and b.
//
// For univariate input it is the product of the factors a and b have in
// common, counted with multiplicity. For multivariate input it runs a
// bounded mutual-division loop, which is a heuristic rather than a true
// multivariate GCD and returns ErrNotConverged when the bound is reached.
func GCD[T any](a, b *Polynomial[T]) (*Polynomial[T], error) {
	mustPoly(a, b)
	switch {
	case a.IsZero():
		return b.Clone(), nil
	case b.IsZero():
		return a.Clone(), nil
	}
	if _, ok := univariateSymbol(a, b); ok {
		return commonFactors(a, b)
	}
	return mutualDivision(a, b)
}

func commonFactors[T any](a, b *Polynomial[T]) (*Polynomial[T], error) {
	fa, err := Factor(a)
	if err != nil {
		return nil, err
	}
	fb, err := Factor(b)
	if err != nil {
		return nil, err
	}
	count := map[string]int{}
	for _, f := range fb {
		count[f.String()]++
	}
	result := Constant(a.p, a.p.One)
	for _, f := range fa {
		if k := f.String(); count[k] > 0 {
			count[k]--
			result = Multiply(result, f)
		}
	}
	return result, nil
}

func mutualDivision[T any](a, b *Polynomial[T]) (*Polynomial[T], error) {
	p := a.p
	dividend, divisor := a.Clone(), b.Clone()
	for i := 0; i < maxGCDIterations; i++ {
		dl, sl := dividend.terms[0].coef, divisor.terms[0].coef
		if dividend.Degree() < divisor.Degree() ||
			(dividend.Degree() == divisor.Degree() && p.LessThan(dl, sl)) {
			dividend, divisor = divisor, dividend
		}
		q, err := Divide(dividend, divisor)
		if err != nil {
			return nil, err
		}
		dividend = q
		if p.IsZero(dl) || p.IsZero(sl) || !dividend.HasVariables() || !divisor.HasVariables() {
			if !dividend.HasVariables() && !dividend.IsZero() {
				return dividend, nil
			}
			return divisor, nil
		}
	}
	return nil, fmt.Errorf("%w: mutual division after %d iterations", ErrNotConverged, maxGCDIterations)
}
