package gopoly

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// Term
// ============================================================

// Term is a coefficient times a product of indeterminates. Terms are
// immutable: every operation returns a new value.
type Term[T any] struct {
	p    *arith.Provider[T]
	coef T
	vars []Indeterminate
}

// NewTerm builds coef*vars. Exponent-0 indeterminates are dropped and a
// repeated symbol has its exponents summed, keeping first-occurrence order.
func NewTerm[T any](p *arith.Provider[T], coef T, vars ...Indeterminate) Term[T] {
	if p == nil {
		panic("gopoly: nil provider")
	}
	merged := make([]Indeterminate, 0, len(vars))
	for _, v := range vars {
		if v.Exponent == 0 {
			continue
		}
		found := false
		for i := range merged {
			if merged[i].Symbol == v.Symbol {
				merged[i].Exponent += v.Exponent
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, v)
		}
	}
	return Term[T]{p: p, coef: p.Clone(coef), vars: merged}
}

// ConstantTerm is a term with no variables.
func ConstantTerm[T any](p *arith.Provider[T], c T) Term[T] { return NewTerm(p, c) }

// ParseTerm reads "coef*X^a*Y^b". The coefficient is optional; a bare
// leading "-" stands for -1.
func ParseTerm[T any](p *arith.Provider[T], text string) (Term[T], error) {
	in := strings.Join(strings.Fields(text), "")
	if in == "" {
		return Term[T]{}, formatErr(text, "empty term")
	}
	parts := strings.Split(in, "*")
	if p.IsComplex() {
		parts[0] = arith.ToTupleNotation(parts[0])
		if strings.HasPrefix(parts[0], "-(") && strings.Contains(parts[0], ")") {
			parts[0] = "(-" + parts[0][2:]
		}
	}

	coef := p.One
	if c, err := p.Parse(parts[0]); err == nil {
		coef = c
		parts = parts[1:]
	} else if strings.HasPrefix(parts[0], "-") {
		coef = p.MinusOne
		parts[0] = parts[0][1:]
	}

	vars := make([]Indeterminate, 0, len(parts))
	for _, s := range parts {
		if s == "" {
			return Term[T]{}, formatErr(text, "empty factor")
		}
		v, err := ParseIndeterminate(s)
		if err != nil {
			return Term[T]{}, err
		}
		vars = append(vars, v)
	}
	return NewTerm(p, coef, vars...), nil
}

// ============================================================
// Accessors
// ============================================================

func (t Term[T]) Provider() *arith.Provider[T] { return t.p }
func (t Term[T]) Coefficient() T               { return t.p.Clone(t.coef) }
func (t Term[T]) HasVariables() bool           { return len(t.vars) > 0 }
func (t Term[T]) VariableCount() int           { return len(t.vars) }
func (t Term[T]) IsZero() bool                 { return t.p.IsZero(t.coef) }

// Variables returns a copy of the variable factors in stored order.
func (t Term[T]) Variables() []Indeterminate {
	out := make([]Indeterminate, len(t.vars))
	copy(out, t.vars)
	return out
}

// Degree is the sum of the exponents.
func (t Term[T]) Degree() int {
	d := 0
	for _, v := range t.vars {
		d += v.Exponent
	}
	return d
}

// Exponent returns the power of sym in t, 0 when absent.
func (t Term[T]) Exponent(sym rune) int {
	for _, v := range t.vars {
		if v.Symbol == sym {
			return v.Exponent
		}
	}
	return 0
}

func (t Term[T]) sortedVars() []Indeterminate {
	s := t.Variables()
	sort.Slice(s, func(i, j int) bool { return s[i].Symbol < s[j].Symbol })
	return s
}

// monomial is the symbol-sorted variable signature; terms with the same
// monomial differ only in coefficient.
func (t Term[T]) monomial() string {
	var b strings.Builder
	for _, v := range t.sortedVars() {
		b.WriteRune(v.Symbol)
		b.WriteString(strconv.Itoa(v.Exponent))
		b.WriteByte(';')
	}
	return b.String()
}

// symbols is the concatenated, sorted symbol string used as the last
// canonical ordering key.
func (t Term[T]) symbols() string {
	var b strings.Builder
	for _, v := range t.sortedVars() {
		b.WriteRune(v.Symbol)
	}
	return b.String()
}

// compareExponents compares the exponents of a and b symbol by symbol in
// ascending symbol order. Both terms must have the same symbols.
func compareExponents[T any](a, b Term[T]) int {
	va, vb := a.sortedVars(), b.sortedVars()
	for i := range va {
		if d := va[i].Exponent - vb[i].Exponent; d != 0 {
			return d
		}
	}
	return 0
}

// SameMonomial reports whether a and b carry the same variables and powers.
func SameMonomial[T any](a, b Term[T]) bool { return a.monomial() == b.monomial() }

// Equal compares coefficient and monomial.
func (t Term[T]) Equal(o Term[T]) bool {
	return t.p.Equal(t.coef, o.coef) && SameMonomial(t, o)
}

func (t Term[T]) String() string {
	if t.IsZero() {
		return "0"
	}
	if len(t.vars) == 0 {
		return t.p.Format(t.coef)
	}
	parts := make([]string, len(t.vars))
	for i, v := range t.vars {
		parts[i] = v.String()
	}
	vars := strings.Join(parts, "*")
	switch {
	case t.p.Equal(t.coef, t.p.One):
		return vars
	case t.p.Equal(t.coef, t.p.MinusOne):
		return "-" + vars
	}
	return t.p.Format(t.coef) + "*" + vars
}

// ============================================================
// Term arithmetic
// ============================================================

// AddTerms sums two terms with the same monomial.
func AddTerms[T any](a, b Term[T]) (Term[T], error) {
	if !SameMonomial(a, b) {
		return Term[T]{}, fmt.Errorf("%w: %s and %s", ErrIncompatibleTerms, a, b)
	}
	return NewTerm(a.p, a.p.Add(a.coef, b.coef), a.vars...), nil
}

// SubtractTerms is a - b for terms with the same monomial.
func SubtractTerms[T any](a, b Term[T]) (Term[T], error) {
	return AddTerms(a, NegateTerm(b))
}

func NegateTerm[T any](t Term[T]) Term[T] {
	return NewTerm(t.p, t.p.Neg(t.coef), t.vars...)
}

// MultiplyTerms multiplies coefficients and merges exponents by symbol.
// The result's variables are sorted by symbol.
func MultiplyTerms[T any](a, b Term[T]) Term[T] {
	vars := append(a.Variables(), b.vars...)
	t := NewTerm(a.p, a.p.Mul(a.coef, b.coef), vars...)
	sortVars(t.vars)
	return t
}

// sortVars orders factors by symbol, then exponent.
func sortVars(vs []Indeterminate) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].Symbol != vs[j].Symbol {
			return vs[i].Symbol < vs[j].Symbol
		}
		return vs[i].Exponent < vs[j].Exponent
	})
}

// ShareCommonFactor reports whether b divides a in the monomial sense: they
// share an identical variable factor and the coefficients are commensurate.
func ShareCommonFactor[T any](a, b Term[T]) bool {
	p := a.p
	if p.IsZero(b.coef) {
		return false
	}
	shared := false
	for _, av := range a.vars {
		for _, bv := range b.vars {
			if av.Equal(bv) {
				shared = true
			}
		}
	}
	if !shared {
		return false
	}
	return p.Equal(b.coef, p.One) ||
		p.Equal(a.coef, b.coef) ||
		p.IsZero(p.Mod(a.coef, b.coef)) ||
		p.GreaterThan(p.GCD(a.coef, b.coef), p.One)
}

// DivideTerms is a / b. It yields the zero term when b shares no factor with
// a. Shared symbols subtract exponents and vanish at zero; symbols only in a
// pass through.
func DivideTerms[T any](a, b Term[T]) Term[T] {
	p := a.p
	if !ShareCommonFactor(a, b) {
		return ConstantTerm(p, p.Zero)
	}
	vars := make([]Indeterminate, 0, len(a.vars))
	for _, v := range a.vars {
		e := v.Exponent - b.Exponent(v.Symbol)
		if e > 0 {
			vars = append(vars, Indeterminate{Symbol: v.Symbol, Exponent: e})
		}
	}
	return NewTerm(p, p.Div(a.coef, b.coef), vars...)
}
