package gopoly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// Derivative / Integral
// ============================================================

func TestDerivative(t *testing.T) {
	cases := []struct {
		in   string
		sym  rune
		want string
	}{
		{"132*X*Y + 77*X + 55*Y + 1", 'X', "132*Y + 77"},
		{"132*X*Y + 77*X + 55*Y + 1", 'Y', "132*X + 55"},
		{"X^3 + 2*X^2*Y", 'X', "3*X^2 + 4*X*Y"},
		{"X^5 - X", 'X', "5*X^4 - 1"},
		{"42", 'X', "0"},
		{"X^2 + Y", 'Z', "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gopoly.Derivative(poly(c.in), c.sym).String(), "d/d%c (%s)", c.sym, c.in)
	}
}

func TestDerivative_Float(t *testing.T) {
	a := gopoly.MustParse[float64]("0.5*X^2 + 1.5*X")
	assert.Equal(t, "X + 1.5", gopoly.Derivative(a, 'X').String())
}

func TestIndefiniteIntegral(t *testing.T) {
	assert.Equal(t, "X^3 + X^2 + X + 5", gopoly.IndefiniteIntegral(poly("3*X^2 + 2*X + 1"), 'X', 5).String())
	assert.Equal(t, "X*Y^2", gopoly.IndefiniteIntegral(poly("2*X*Y"), 'Y', 0).String())
	assert.Equal(t, "2*X*Y", gopoly.IndefiniteIntegral(poly("2*Y"), 'X', 0).String())
	assert.Equal(t, "X*Y^2*Z", gopoly.IndefiniteIntegral(poly("Z*Y^2"), 'X', 0).String())
	assert.Equal(t, "0", gopoly.IndefiniteIntegral(poly("0"), 'X', 0).String())
	assert.Equal(t, "7", gopoly.IndefiniteIntegral(poly("0"), 'X', 7).String())
}

func TestIndefiniteIntegral_IntegerTruncates(t *testing.T) {
	// 1/2 truncates to 0 for int64 coefficients.
	assert.Equal(t, "3", gopoly.IndefiniteIntegral(poly("X"), 'X', 3).String())
}

func TestIndefiniteIntegral_Rational(t *testing.T) {
	a := gopoly.MustParse[*big.Rat]("X + 1")
	got := gopoly.IndefiniteIntegral(a, 'X', big.NewRat(-1, 3))
	assert.Equal(t, "1/2*X^2 + X - 1/3", got.String())
}

func TestDerivativeOfIntegral(t *testing.T) {
	a := poly("6*X^2*Y + 4*X - 2")
	back := gopoly.Derivative(gopoly.IndefiniteIntegral(a, 'X', 9), 'X')
	assert.True(t, back.Equal(a), "%s != %s", back, a)
}

// ============================================================
// Evaluate
// ============================================================

func TestEvaluate(t *testing.T) {
	got := gopoly.Evaluate(poly("3*X^2*Y - 2*X + 7"), map[rune]int64{'X': 4546, 'Y': 63570})
	assert.Equal(t, int64(3941234973275), got)

	// Y has no binding and contributes no factor.
	assert.Equal(t, int64(8), gopoly.Evaluate(poly("3*X*Y + 2"), map[rune]int64{'X': 2}))
	assert.Equal(t, int64(-1), gopoly.Evaluate(poly("-1"), nil))
}

func TestEvaluate_Fields(t *testing.T) {
	b := gopoly.MustParse[*big.Int]("X^3*Y^2 + 7*X*Y - 1")
	v := gopoly.Evaluate(b, map[rune]*big.Int{'X': big.NewInt(45468), 'Y': big.NewInt(63570)})
	assert.Equal(t, "379858611850401439122119", v.String())

	r := gopoly.MustParse[*big.Rat]("1/2*X^2")
	rv := gopoly.Evaluate(r, map[rune]*big.Rat{'X': big.NewRat(3, 1)})
	assert.Equal(t, "9/2", arith.MustLookup[*big.Rat]().Format(rv))

	f := gopoly.MustParse[float64]("0.5*X^2 + 1")
	assert.InDelta(t, 5.5, gopoly.Evaluate(f, map[rune]float64{'X': 3}), 1e-12)

	c := gopoly.MustParse[complex128]("(0, 1)*X + 1")
	assert.Equal(t, complex(0, 0), gopoly.Evaluate(c, map[rune]complex128{'X': complex(0, 1)}))
}

// ============================================================
// Composition
// ============================================================

func TestFunctionalComposition(t *testing.T) {
	cases := []struct {
		in       string
		bindings map[rune]string
		want     string
	}{
		{"X^2 + Y", map[rune]string{'X': "Y + 1"}, "Y^2 + 3*Y + 1"},
		{"X*Y", map[rune]string{'X': "Z", 'Y': "Z + 1"}, "Z^2 + Z"},
		{"2*X + 1", map[rune]string{'X': "X^2"}, "2*X^2 + 1"},
		{"X + Y", map[rune]string{'Z': "5"}, "X + Y"},
		{"3*X^2", map[rune]string{'X': "2"}, "12"},
		{"X^3 + 1", map[rune]string{'X': "Y - 1"}, "Y^3 - 3*Y^2 + 3*Y"},
	}
	for _, c := range cases {
		bindings := map[rune]*gopoly.Polynomial[int64]{}
		for sym, s := range c.bindings {
			bindings[sym] = poly(s)
		}
		assert.Equal(t, c.want, gopoly.FunctionalComposition(poly(c.in), bindings).String(), c.in)
	}
}

func TestFunctionalComposition_NilBinding(t *testing.T) {
	got := gopoly.FunctionalComposition(poly("X + 1"), map[rune]*gopoly.Polynomial[int64]{'X': nil})
	assert.Equal(t, "X + 1", got.String())
}
