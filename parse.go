package gopoly

import (
	"strings"
	"unicode"

	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// Parsing
// ============================================================

// Parse reads a polynomial with coefficients of type T, using the provider
// registered for T.
//
//	p, err := gopoly.Parse[int64]("3*X^2*Y - 2*X + 7")
func Parse[T any](text string) (*Polynomial[T], error) {
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	return ParseWith(p, text)
}

// MustParse is Parse that panics on error. Intended for literals in tests and examples.
func MustParse[T any](text string) *Polynomial[T] {
	a, err := Parse[T](text)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseWith reads a polynomial using an explicit provider.
func ParseWith[T any](p *arith.Provider[T], text string) (*Polynomial[T], error) {
	in := strings.Join(strings.Fields(text), "")
	if in == "" {
		return nil, formatErr(text, "empty polynomial")
	}
	if p.IsComplex() {
		var err error
		if in, err = rewriteComplex(arith.ToTupleNotation(in)); err != nil {
			return nil, err
		}
	} else {
		in = strings.ReplaceAll(in, "-", "+-")
		in = strings.TrimPrefix(in, "+")
	}

	parts := strings.Split(in, "+")
	terms := make([]Term[T], 0, len(parts))
	for _, s := range parts {
		t, err := ParseTerm(p, s)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return NewPolynomial(p, terms...), nil
}

type scanState int

const (
	scanOutside scanState = iota // between terms
	scanTerm                     // inside a term, past its coefficient
	scanNumber                   // inside a bare real coefficient
	scanTuple                    // inside a "(re, im)" coefficient
)

// rewriteComplex normalizes complex polynomial text so it can be split on
// '+': a minus between terms becomes '+' with the sign folded into the next
// coefficient, and a term that starts with a variable gets an explicit
// (1,0) coefficient. "-3*X - Y - 1" becomes "-3*X+(-1,0)*Y+-1".
func rewriteComplex(in string) (string, error) {
	var out strings.Builder
	state := scanOutside
	negate := false
	unit := func() {
		out.WriteByte('(')
		if negate {
			out.WriteByte('-')
			negate = false
		}
		out.WriteString("1,0)*")
	}

	for i, c := range in {
		switch state {
		case scanTuple:
			if c == ')' {
				state = scanTerm
			}
		case scanNumber:
			switch {
			case c == '*':
				state = scanTerm
			case unicode.IsLetter(c):
				state = scanTerm
				unit()
			case c == '+' || c == '-':
				state = scanOutside
				if c == '-' {
					negate = true
					c = '+'
				}
			}
		case scanTerm:
			switch c {
			case '+':
				state = scanOutside
			case '-':
				state = scanOutside
				negate = true
				c = '+'
			}
		case scanOutside:
			switch {
			case c == '(':
				state = scanTuple
				if negate {
					out.WriteByte('(')
					c = '-'
					negate = false
				}
			case unicode.IsDigit(c):
				state = scanNumber
				if negate {
					out.WriteByte('-')
					negate = false
				}
			case unicode.IsLetter(c):
				state = scanTerm
				unit()
			case c == '-':
				if i != 0 {
					return "", formatErr(in, "unexpected '-' at offset %d", i)
				}
				negate = true
				continue
			}
		}
		out.WriteRune(c)
	}
	return out.String(), nil
}
