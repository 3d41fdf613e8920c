package gopoly

// ============================================================
// Calculus, evaluation, composition
// ============================================================

// Derivative returns d(a)/d(sym). Terms without sym vanish.
func Derivative[T any](a *Polynomial[T], sym rune) *Polynomial[T] {
	mustPoly(a)
	p := a.p
	var out []Term[T]
	for _, t := range a.terms {
		e := t.Exponent(sym)
		if e == 0 {
			continue
		}
		vars := make([]Indeterminate, 0, len(t.vars))
		for _, v := range t.vars {
			if v.Symbol == sym {
				v.Exponent--
			}
			vars = append(vars, v)
		}
		out = append(out, NewTerm(p, p.Mul(t.coef, p.FromInt(e)), vars...))
	}
	return NewPolynomial(p, out...)
}

// IndefiniteIntegral returns the antiderivative of a in sym plus the
// constant of integration c. Integer coefficient types divide with
// truncation.
func IndefiniteIntegral[T any](a *Polynomial[T], sym rune, c T) *Polynomial[T] {
	mustPoly(a)
	p := a.p
	out := make([]Term[T], 0, len(a.terms)+1)
	for _, t := range a.terms {
		if t.IsZero() {
			continue
		}
		e := t.Exponent(sym) + 1
		vars := append(t.Variables(), Indeterminate{Symbol: sym, Exponent: 1})
		coef := t.coef
		if e > 1 {
			coef = p.Div(coef, p.FromInt(e))
		}
		nt := NewTerm(p, coef, vars...)
		sortVars(nt.vars)
		out = append(out, nt)
	}
	out = append(out, ConstantTerm(p, c))
	return NewPolynomial(p, out...)
}

// Evaluate substitutes values for symbols and sums the terms. A symbol with
// no binding contributes no factor.
func Evaluate[T any](a *Polynomial[T], bindings map[rune]T) T {
	mustPoly(a)
	p := a.p
	sum := p.Zero
	for _, t := range a.terms {
		v := t.coef
		for _, x := range t.vars {
			if b, ok := bindings[x.Symbol]; ok {
				v = p.Mul(v, p.PowInt(b, x.Exponent))
			}
		}
		sum = p.Add(sum, v)
	}
	return sum
}

// FunctionalComposition substitutes a polynomial for each bound symbol.
// Unbound symbols are kept as they are.
func FunctionalComposition[T any](a *Polynomial[T], bindings map[rune]*Polynomial[T]) *Polynomial[T] {
	mustPoly(a)
	p := a.p
	parts := make([]*Polynomial[T], 0, len(a.terms))
	for _, t := range a.terms {
		factors := []*Polynomial[T]{Constant(p, t.coef)}
		for _, v := range t.vars {
			sub, ok := bindings[v.Symbol]
			if !ok || sub == nil {
				factors = append(factors, Monomial(p, p.One, v))
				continue
			}
			for i := 0; i < v.Exponent; i++ {
				factors = append(factors, sub)
			}
		}
		parts = append(parts, Product(factors...))
	}
	return Sum(parts...)
}
