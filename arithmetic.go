package gopoly

import "fmt"

// ============================================================
// Add, Subtract, Multiply, Pow
// ============================================================

// Add returns a + b.
func Add[T any](a, b *Polynomial[T]) *Polynomial[T] {
	mustPoly(a, b)
	return combine(a, b, false)
}

// Subtract returns a - b.
func Subtract[T any](a, b *Polynomial[T]) *Polynomial[T] {
	mustPoly(a, b)
	return combine(a, b, true)
}

// combine merges b into a term by term: a matching monomial in a is replaced
// by the sum (or difference); unmatched terms of b are appended, negated
// when subtracting.
func combine[T any](a, b *Polynomial[T], subtract bool) *Polynomial[T] {
	p := a.p
	terms := a.Terms()
	for _, r := range b.terms {
		if subtract {
			r = NegateTerm(r)
		}
		i := indexMonomial(terms, r)
		if i < 0 {
			terms = append(terms, r)
			continue
		}
		m := terms[i]
		terms = append(terms[:i], terms[i+1:]...)
		sum := NewTerm(p, p.Add(m.coef, r.coef), m.vars...)
		if !sum.IsZero() && indexEqual(terms, sum) < 0 {
			terms = append(terms, sum)
		}
	}
	return NewPolynomial(p, terms...)
}

func indexMonomial[T any](terms []Term[T], t Term[T]) int {
	key := t.monomial()
	for i, u := range terms {
		if u.monomial() == key {
			return i
		}
	}
	return -1
}

func indexEqual[T any](terms []Term[T], t Term[T]) int {
	for i, u := range terms {
		if u.Equal(t) {
			return i
		}
	}
	return -1
}

// Multiply returns a * b, combining like terms as they are produced.
func Multiply[T any](a, b *Polynomial[T]) *Polynomial[T] {
	mustPoly(a, b)
	p := a.p
	var out []Term[T]
	index := map[string]int{}
	for _, l := range a.terms {
		for _, r := range b.terms {
			t := MultiplyTerms(l, r)
			key := t.monomial()
			if i, ok := index[key]; ok {
				out[i] = NewTerm(p, p.Add(out[i].coef, t.coef), out[i].vars...)
				continue
			}
			index[key] = len(out)
			out = append(out, t)
		}
	}
	return NewPolynomial(p, out...)
}

// Pow returns a^n by repeated multiplication. a^0 is the constant 1.
func Pow[T any](a *Polynomial[T], n int) (*Polynomial[T], error) {
	mustPoly(a)
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative exponent %d", ErrUnsupported, n)
	case n == 0:
		return Constant(a.p, a.p.One), nil
	}
	result := a.Clone()
	for i := 1; i < n; i++ {
		result = Multiply(result, a)
	}
	return result, nil
}

// Sum folds Add over polys. It panics on an empty list.
func Sum[T any](polys ...*Polynomial[T]) *Polynomial[T] {
	if len(polys) == 0 {
		panic("gopoly: Sum of no polynomials")
	}
	result := polys[0].Clone()
	for _, q := range polys[1:] {
		result = Add(result, q)
	}
	return result
}

// Product folds Multiply over polys. It panics on an empty list.
func Product[T any](polys ...*Polynomial[T]) *Polynomial[T] {
	if len(polys) == 0 {
		panic("gopoly: Product of no polynomials")
	}
	result := polys[0].Clone()
	for _, q := range polys[1:] {
		result = Multiply(result, q)
	}
	return result
}

// Negate returns -a.
func Negate[T any](a *Polynomial[T]) *Polynomial[T] {
	mustPoly(a)
	terms := make([]Term[T], len(a.terms))
	for i, t := range a.terms {
		terms[i] = NegateTerm(t)
	}
	return NewPolynomial(a.p, terms...)
}
