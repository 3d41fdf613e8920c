package gopoly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
)

// ============================================================
// Indeterminate tests
// ============================================================

func TestIndeterminate_Parse(t *testing.T) {
	cases := []struct {
		in   string
		want gopoly.Indeterminate
	}{
		{"X", gopoly.Indeterminate{Symbol: 'X', Exponent: 1}},
		{"Y^3", gopoly.Indeterminate{Symbol: 'Y', Exponent: 3}},
		{"z^10", gopoly.Indeterminate{Symbol: 'z', Exponent: 10}},
		{"Ω^0", gopoly.Indeterminate{Symbol: 'Ω', Exponent: 0}},
	}
	for _, c := range cases {
		got, err := gopoly.ParseIndeterminate(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestIndeterminate_ParseErrors(t *testing.T) {
	for _, in := range []string{"", "XY", "1", "1^2", "X^", "X^a", "X^-1", "X^2^3"} {
		_, err := gopoly.ParseIndeterminate(in)
		assert.ErrorIs(t, err, gopoly.ErrFormat, in)
	}
}

func TestIndeterminate_FormatErrorCarriesInput(t *testing.T) {
	_, err := gopoly.ParseIndeterminate("X^a")
	var fe *gopoly.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "X^a", fe.Input)
}

func TestIndeterminate_String(t *testing.T) {
	assert.Equal(t, "", gopoly.Var('X', 0).String())
	assert.Equal(t, "X", gopoly.Var('X', 1).String())
	assert.Equal(t, "X^3", gopoly.Var('X', 3).String())
}

func TestIndeterminate_New(t *testing.T) {
	_, err := gopoly.NewIndeterminate('1', 1)
	assert.ErrorIs(t, err, gopoly.ErrArgument)
	_, err = gopoly.NewIndeterminate('X', -1)
	assert.ErrorIs(t, err, gopoly.ErrArgument)
	v, err := gopoly.NewIndeterminate('∑', 2)
	require.NoError(t, err)
	assert.Equal(t, "∑^2", v.String())

	assert.Panics(t, func() { gopoly.Var('#', 1) })
}

func TestIndeterminate_ConstantsAreEqual(t *testing.T) {
	x0, y0 := gopoly.Var('X', 0), gopoly.Var('Y', 0)
	assert.True(t, x0.IsConstant())
	assert.True(t, x0.Equal(y0))
	assert.Equal(t, x0.Key(), y0.Key())
	assert.False(t, x0.Equal(gopoly.Var('X', 1)))
}

func TestIndeterminate_Compatible(t *testing.T) {
	assert.True(t, gopoly.Var('X', 1).Compatible(gopoly.Var('X', 4)))
	assert.False(t, gopoly.Var('X', 1).Compatible(gopoly.Var('Y', 1)))
	assert.False(t, gopoly.Var('X', 2).Equal(gopoly.Var('X', 3)))
}
