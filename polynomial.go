// Package gopoly provides multivariate polynomial algebra over any numeric
// coefficient type.
//
// Design goals:
//   - One generic engine for integers, big integers, rationals, floats,
//     256-bit integers and complex numbers (see package arith)
//   - Canonical term order, so equality and rendering are deterministic
//   - A plain text wire format that round-trips through Parse and String
//   - Immutable values: every operation returns a new polynomial
//   - AI/LLM friendly: string-in/string-out tool calls and an MCP schema
package gopoly

import (
	"sort"
	"strings"

	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// Polynomial
// ============================================================

// Polynomial is a canonically ordered sum of terms with no zero terms.
// The zero polynomial holds the single zero term.
type Polynomial[T any] struct {
	p     *arith.Provider[T]
	terms []Term[T]
}

// NewPolynomial builds a polynomial from terms. Like terms are combined, zero
// terms dropped and the rest put in canonical order. The input is not retained.
func NewPolynomial[T any](p *arith.Provider[T], terms ...Term[T]) *Polynomial[T] {
	if p == nil {
		panic("gopoly: nil provider")
	}
	out := make([]Term[T], 0, len(terms))
	index := make(map[string]int, len(terms))
	for _, t := range terms {
		if t.p == nil {
			continue
		}
		key := t.monomial()
		if i, ok := index[key]; ok {
			out[i] = NewTerm(p, p.Add(out[i].coef, t.coef), out[i].vars...)
			continue
		}
		index[key] = len(out)
		out = append(out, NewTerm(p, t.coef, t.vars...))
	}
	kept := out[:0]
	for _, t := range out {
		if !t.IsZero() {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, ConstantTerm(p, p.Zero))
	}
	poly := &Polynomial[T]{p: p, terms: kept}
	poly.order()
	return poly
}

// Zero is the zero polynomial.
func Zero[T any](p *arith.Provider[T]) *Polynomial[T] { return NewPolynomial[T](p) }

// Constant is the polynomial c.
func Constant[T any](p *arith.Provider[T], c T) *Polynomial[T] {
	return NewPolynomial(p, ConstantTerm(p, c))
}

// Monomial is the polynomial c*v.
func Monomial[T any](p *arith.Provider[T], c T, v ...Indeterminate) *Polynomial[T] {
	return NewPolynomial(p, NewTerm(p, c, v...))
}

// order sorts terms by degree descending, then variable count ascending,
// then coefficient descending, then sorted symbol string ascending. Monomials
// that still tie, such as X^2*Y and X*Y^2, go by exponent descending in
// symbol order. Like terms are already combined, so the order is total.
func (a *Polynomial[T]) order() {
	p := a.p
	sort.SliceStable(a.terms, func(i, j int) bool {
		ti, tj := a.terms[i], a.terms[j]
		if di, dj := ti.Degree(), tj.Degree(); di != dj {
			return di > dj
		}
		if ci, cj := ti.VariableCount(), tj.VariableCount(); ci != cj {
			return ci < cj
		}
		if c := p.Compare(ti.coef, tj.coef); c != 0 {
			return c > 0
		}
		if si, sj := ti.symbols(), tj.symbols(); si != sj {
			return si < sj
		}
		return compareExponents(ti, tj) > 0
	})
}

func mustPoly[T any](polys ...*Polynomial[T]) {
	for _, a := range polys {
		if a == nil {
			panic("gopoly: nil polynomial")
		}
	}
}

// ============================================================
// Accessors
// ============================================================

func (a *Polynomial[T]) Provider() *arith.Provider[T] { return a.p }
func (a *Polynomial[T]) Len() int                     { return len(a.terms) }
func (a *Polynomial[T]) IsZero() bool                 { return len(a.terms) == 1 && a.terms[0].IsZero() }

// Terms returns the terms in canonical order.
func (a *Polynomial[T]) Terms() []Term[T] {
	out := make([]Term[T], len(a.terms))
	copy(out, a.terms)
	return out
}

// Degree is the largest term degree.
func (a *Polynomial[T]) Degree() int {
	d := 0
	for _, t := range a.terms {
		d = max(d, t.Degree())
	}
	return d
}

// HasVariables reports whether any term carries a variable.
func (a *Polynomial[T]) HasVariables() bool {
	for _, t := range a.terms {
		if t.HasVariables() {
			return true
		}
	}
	return false
}

// Symbols lists the distinct variable symbols in ascending order.
func (a *Polynomial[T]) Symbols() []rune {
	seen := map[rune]bool{}
	var out []rune
	for _, t := range a.terms {
		for _, v := range t.vars {
			if !seen[v.Symbol] {
				seen[v.Symbol] = true
				out = append(out, v.Symbol)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LeadingCoefficient is the coefficient of the first term in canonical order.
func (a *Polynomial[T]) LeadingCoefficient() T { return a.terms[0].Coefficient() }

// ConstantCoefficient is the coefficient of the variable-free term, or zero.
func (a *Polynomial[T]) ConstantCoefficient() T {
	for _, t := range a.terms {
		if !t.HasVariables() {
			return t.Coefficient()
		}
	}
	return a.p.Zero
}

// Coefficients returns the dense coefficient vector indexed by term degree.
// It is only meaningful for univariate polynomials.
func (a *Polynomial[T]) Coefficients() []T {
	out := make([]T, a.Degree()+1)
	for i := range out {
		out[i] = a.p.Zero
	}
	for _, t := range a.terms {
		d := t.Degree()
		out[d] = a.p.Add(out[d], t.coef)
	}
	return out
}

// Clone returns a deep copy.
func (a *Polynomial[T]) Clone() *Polynomial[T] { return NewPolynomial(a.p, a.terms...) }

// Equal compares term by term in canonical order.
func (a *Polynomial[T]) Equal(b *Polynomial[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.terms) != len(b.terms) || a.Degree() != b.Degree() {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(b.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Polynomial[T]) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), " + -", " - ")
}

// fromDense turns coefficients indexed by exponent into a polynomial in sym.
func fromDense[T any](p *arith.Provider[T], sym rune, coeffs []T) *Polynomial[T] {
	terms := make([]Term[T], 0, len(coeffs))
	for i, c := range coeffs {
		if p.IsZero(c) {
			continue
		}
		if i == 0 {
			terms = append(terms, ConstantTerm(p, c))
			continue
		}
		terms = append(terms, NewTerm(p, c, Indeterminate{Symbol: sym, Exponent: i}))
	}
	return NewPolynomial(p, terms...)
}

// univariateSymbol returns the single symbol shared by polys, 'X' when there
// is none, and false when more than one symbol appears.
func univariateSymbol[T any](polys ...*Polynomial[T]) (rune, bool) {
	sym, n := 'X', 0
	seen := map[rune]bool{}
	for _, a := range polys {
		for _, s := range a.Symbols() {
			if !seen[s] {
				seen[s] = true
				sym = s
				n++
			}
		}
	}
	return sym, n <= 1
}
