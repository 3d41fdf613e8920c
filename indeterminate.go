package gopoly

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ============================================================
// Indeterminate
// ============================================================

// Indeterminate is one variable factor of a term, such as X^3.
// An exponent of 0 means "no variable"; all such values are equal.
type Indeterminate struct {
	Symbol   rune
	Exponent int
}

// NewIndeterminate validates symbol and exponent. The symbol must be a
// letter (upper, lower or modifier) or a math symbol.
func NewIndeterminate(symbol rune, exponent int) (Indeterminate, error) {
	if !validSymbol(symbol) {
		return Indeterminate{}, fmt.Errorf("%w: symbol %q must be a letter", ErrArgument, symbol)
	}
	if exponent < 0 {
		return Indeterminate{}, fmt.Errorf("%w: negative exponent %d", ErrArgument, exponent)
	}
	return Indeterminate{Symbol: symbol, Exponent: exponent}, nil
}

// Var is NewIndeterminate for known-good arguments; it panics otherwise.
func Var(symbol rune, exponent int) Indeterminate {
	v, err := NewIndeterminate(symbol, exponent)
	if err != nil {
		panic(err)
	}
	return v
}

func validSymbol(r rune) bool {
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lm, unicode.Sm)
}

// ParseIndeterminate reads "X" or "X^n".
func ParseIndeterminate(text string) (Indeterminate, error) {
	name, exp, hasExp := strings.Cut(text, "^")
	sym := []rune(name)
	if len(sym) != 1 {
		return Indeterminate{}, formatErr(text, "variable must be a single letter")
	}
	if !unicode.IsLetter(sym[0]) {
		return Indeterminate{}, formatErr(text, "variable %q is not a letter", sym[0])
	}
	if !hasExp {
		return Indeterminate{Symbol: sym[0], Exponent: 1}, nil
	}
	if exp == "" || strings.IndexFunc(exp, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Indeterminate{}, formatErr(text, "exponent %q must be digits", exp)
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return Indeterminate{}, formatErr(text, "exponent %q out of range", exp)
	}
	return Indeterminate{Symbol: sym[0], Exponent: n}, nil
}

func (v Indeterminate) IsConstant() bool { return v.Exponent == 0 }

// Equal treats every exponent-0 indeterminate as the same value.
func (v Indeterminate) Equal(o Indeterminate) bool {
	if v.Exponent == 0 || o.Exponent == 0 {
		return v.Exponent == o.Exponent
	}
	return v.Symbol == o.Symbol && v.Exponent == o.Exponent
}

// Compatible reports whether v and o refer to the same variable,
// regardless of power.
func (v Indeterminate) Compatible(o Indeterminate) bool {
	if v.Exponent == 0 || o.Exponent == 0 {
		return v.Exponent == o.Exponent
	}
	return v.Symbol == o.Symbol
}

// Key is a map key consistent with Equal.
func (v Indeterminate) Key() Indeterminate {
	if v.Exponent == 0 {
		return Indeterminate{Symbol: 'X'}
	}
	return v
}

func (v Indeterminate) String() string {
	switch v.Exponent {
	case 0:
		return ""
	case 1:
		return string(v.Symbol)
	}
	return string(v.Symbol) + "^" + strconv.Itoa(v.Exponent)
}
