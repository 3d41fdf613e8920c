package gopoly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
)

// ============================================================
// Add / Subtract
// ============================================================

func TestAdd(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"X^2 + 2*X - 1", "2*X^2 - 3*X + 6", "3*X^2 - X + 5"},
		{"X^2 + 6", "X^2 - 6", "2*X^2"},
		{"X*Y", "Y*X", "2*X*Y"},
		{"X", "Y", "X + Y"},
		{"X + 1", "-X - 1", "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gopoly.Add(poly(c.a), poly(c.b)).String(), "%s + %s", c.a, c.b)
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"X^2 + 2*X", "3*X + 5", "X^2 - X - 5"},
		{"X^2 + 6", "X^2 + 6", "0"},
		{"3*X*Y + Y", "X*Y", "2*X*Y + Y"},
		{"5", "X^3 - Y", "-X^3 + Y + 5"},
		{"X", "-X", "2*X"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gopoly.Subtract(poly(c.a), poly(c.b)).String(), "%s - %s", c.a, c.b)
	}
}

func TestAdd_Identities(t *testing.T) {
	a := poly("3*X^2*Y - 2*X + 7")
	b := poly("X^2*Y + Y^2 - 4")
	zero := gopoly.Zero(ints())

	assert.True(t, gopoly.Add(a, zero).Equal(a))
	assert.True(t, gopoly.Subtract(a, a).IsZero())
	assert.True(t, gopoly.Add(a, b).Equal(gopoly.Add(b, a)))
	assert.True(t, gopoly.Add(a, gopoly.Negate(a)).IsZero())
}

func TestAdd_DoesNotMutate(t *testing.T) {
	a, b := poly("X + 1"), poly("X - 1")
	_ = gopoly.Add(a, b)
	_ = gopoly.Subtract(a, b)
	assert.Equal(t, "X + 1", a.String())
	assert.Equal(t, "X - 1", b.String())
}

// ============================================================
// Multiply / Pow
// ============================================================

func TestMultiply(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"6*X + 1", "6*Y + 1", "36*X*Y + 6*X + 6*Y + 1"},
		{"6*X + 1", "6*X - 1", "36*X^2 - 1"},
		{"X + 1", "X + 1", "X^2 + 2*X + 1"},
		{"X^2*Y", "3*Y*X", "3*X^3*Y^2"},
		{"X + 2", "0", "0"},
		{"X - Y", "1", "X - Y"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gopoly.Multiply(poly(c.a), poly(c.b)).String(), "(%s)(%s)", c.a, c.b)
	}
}

func TestAdd_CommutesOnTiedMonomials(t *testing.T) {
	a, b := poly("X^2*Y"), poly("X*Y^2")
	ab, ba := gopoly.Add(a, b), gopoly.Add(b, a)
	assert.True(t, ab.Equal(ba), "%s != %s", ab, ba)
	assert.Equal(t, "X^2*Y + X*Y^2", ab.String())
	assert.Equal(t, ab.String(), ba.String())
}

func TestMultiply_Laws(t *testing.T) {
	a, b, c := poly("2*X + Y"), poly("X^2 - 3"), poly("Y - 1")
	assert.True(t, gopoly.Multiply(a, b).Equal(gopoly.Multiply(b, a)))
	left := gopoly.Multiply(a, gopoly.Add(b, c))
	right := gopoly.Add(gopoly.Multiply(a, b), gopoly.Multiply(a, c))
	assert.True(t, left.Equal(right), "%s != %s", left, right)
}

func TestPow(t *testing.T) {
	got, err := gopoly.Pow(poly("2*X*Y^2 - 1"), 2)
	require.NoError(t, err)
	assert.Equal(t, "4*X^2*Y^4 - 4*X*Y^2 + 1", got.String())

	got, err = gopoly.Pow(poly("X + 1"), 3)
	require.NoError(t, err)
	assert.Equal(t, "X^3 + 3*X^2 + 3*X + 1", got.String())
}

func TestPow_MatchesParsedExpansion(t *testing.T) {
	got, err := gopoly.Pow(poly("X + Y"), 3)
	require.NoError(t, err)
	want := poly("X^3 + 3*X*Y^2 + 3*X^2*Y + Y^3")
	assert.True(t, got.Equal(want), "%s != %s", got, want)
	assert.Equal(t, "X^3 + Y^3 + 3*X^2*Y + 3*X*Y^2", got.String())
}

func TestPow_Consistency(t *testing.T) {
	a := poly("X - 2*Y")
	one, err := gopoly.Pow(a, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", one.String())
	assert.False(t, one.HasVariables())

	same, err := gopoly.Pow(a, 1)
	require.NoError(t, err)
	assert.True(t, same.Equal(a))

	p3, err := gopoly.Pow(a, 3)
	require.NoError(t, err)
	p4, err := gopoly.Pow(a, 4)
	require.NoError(t, err)
	assert.True(t, p4.Equal(gopoly.Multiply(p3, a)))
}

func TestPow_NegativeExponent(t *testing.T) {
	_, err := gopoly.Pow(poly("X"), -1)
	assert.ErrorIs(t, err, gopoly.ErrUnsupported)
}

func TestPow_BigCoefficients(t *testing.T) {
	got, err := gopoly.Pow(gopoly.MustParse[*big.Int]("10000000000*X + 1"), 2)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000*X^2 + 20000000000*X + 1", got.String())
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, "X + Y + 1", gopoly.Sum(poly("X"), poly("Y"), poly("1")).String())
	assert.Equal(t, "X^2 - 1", gopoly.Product(poly("X + 1"), poly("X - 1")).String())
	assert.Equal(t, "X", gopoly.Product(poly("X")).String())
	assert.Panics(t, func() { gopoly.Sum[int64]() })
	assert.Panics(t, func() { gopoly.Product[int64]() })
}
