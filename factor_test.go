package gopoly_test

import (
	"math/big"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
)

func factorStrings[T any](polys []*gopoly.Polynomial[T]) []string {
	out := make([]string, len(polys))
	for i, f := range polys {
		out[i] = f.String()
	}
	sort.Strings(out)
	return out
}

// ============================================================
// Factor
// ============================================================

func TestFactor(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"X^4 + 8*X^3 + 21*X^2 + 22*X + 8", []string{"X + 1", "X + 1", "X + 2", "X + 4"}},
		{"2*X^2 - 2", []string{"2", "X + 1", "X - 1"}},
		{"2*X^2 - 3*X + 1", []string{"2*X - 1", "X - 1"}},
		{"X^3 - X", []string{"X", "X + 1", "X - 1"}},
		{"X^2 + 1", []string{}},
	}
	for _, c := range cases {
		got, err := gopoly.Factor(poly(c.in))
		require.NoError(t, err, c.in)
		sort.Strings(c.want)
		if diff := cmp.Diff(c.want, factorStrings(got)); diff != "" {
			t.Errorf("Factor(%s) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestFactorDetailed(t *testing.T) {
	res, err := gopoly.FactorDetailed(poly("-X^2 + 1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"X + 1", "X - 1"}, factorStrings(res.Factors))
	assert.Equal(t, "-1", res.Remainder.String())
	assert.True(t, res.Complete)

	res, err = gopoly.FactorDetailed(poly("2*X^2 + 2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, factorStrings(res.Factors))
	assert.Equal(t, "X^2 + 1", res.Remainder.String())
	assert.False(t, res.Complete)

	res, err = gopoly.FactorDetailed(poly("6"))
	require.NoError(t, err)
	assert.Empty(t, res.Factors)
	assert.Equal(t, "6", res.Remainder.String())
	assert.True(t, res.Complete)
}

func TestFactor_ProductRestoresInput(t *testing.T) {
	for _, in := range []string{"X^4 + 8*X^3 + 21*X^2 + 22*X + 8", "3*X^3 - 3*X", "2*X^2 + 2"} {
		a := poly(in)
		res, err := gopoly.FactorDetailed(a)
		require.NoError(t, err)
		product := gopoly.Product(append(res.Factors, res.Remainder)...)
		assert.True(t, product.Equal(a), "%s != %s", product, a)
	}
}

func TestFactor_BigInt(t *testing.T) {
	got, err := gopoly.Factor(gopoly.MustParse[*big.Int]("X^2 - 5*X + 6"))
	require.NoError(t, err)
	assert.Equal(t, []string{"X - 2", "X - 3"}, factorStrings(got))
}

func TestFactor_Multivariate(t *testing.T) {
	_, err := gopoly.Factor(poly("X*Y + 1"))
	assert.ErrorIs(t, err, gopoly.ErrUnsupported)
}

// ============================================================
// GCD
// ============================================================

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"X^4 + 8*X^3 + 21*X^2 + 22*X + 8", "X^3 + 6*X^2 + 11*X + 6", "X^2 + 3*X + 2"},
		{"X^2 - 1", "X^2 + 2*X + 1", "X + 1"},
		{"X + 1", "X + 2", "1"},
		{"0", "X + 1", "X + 1"},
		{"X - 3", "0", "X - 3"},
		{"X*Y + X", "X", "X"},
	}
	for _, c := range cases {
		got, err := gopoly.GCD(poly(c.a), poly(c.b))
		require.NoError(t, err, "gcd(%s, %s)", c.a, c.b)
		assert.Equal(t, c.want, got.String(), "gcd(%s, %s)", c.a, c.b)
	}
}

func TestGCD_CountsMultiplicity(t *testing.T) {
	a := poly("X^3 + 3*X^2 + 3*X + 1") // (X+1)^3
	b := poly("X^2 + 2*X + 1")         // (X+1)^2
	got, err := gopoly.GCD(a, b)
	require.NoError(t, err)
	assert.Equal(t, "X^2 + 2*X + 1", got.String())
}
