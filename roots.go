package gopoly

import (
	"fmt"
	"math/big"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// Numeric roots
// ============================================================

// NumericRoots approximates every complex root of a univariate polynomial as
// the eigenvalues of its companion matrix. Roots are sorted by real part,
// then imaginary part. A constant polynomial has no roots.
func NumericRoots[T any](a *Polynomial[T]) ([]complex128, error) {
	mustPoly(a)
	if _, ok := univariateSymbol(a); !ok {
		return nil, fmt.Errorf("%w: roots of a multivariate polynomial", ErrUnsupported)
	}
	n := a.Degree()
	if n == 0 {
		return nil, nil
	}
	coeffs := make([]float64, n+1)
	for i, c := range a.Coefficients() {
		f, err := toFloat(a.p, c)
		if err != nil {
			return nil, err
		}
		coeffs[i] = f
	}

	// Companion matrix of the monic polynomial: ones on the subdiagonal and
	// -c_i/c_n down the last column.
	lead := coeffs[n]
	companion := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if i > 0 {
			companion.Set(i, i-1, 1)
		}
		companion.Set(i, n-1, -coeffs[i]/lead)
	}
	var eig mat.Eigen
	if !eig.Factorize(companion, mat.EigenNone) {
		return nil, fmt.Errorf("%w: eigenvalue decomposition failed", ErrNotConverged)
	}
	roots := eig.Values(nil)
	sort.Slice(roots, func(i, j int) bool {
		if real(roots[i]) != real(roots[j]) {
			return real(roots[i]) < real(roots[j])
		}
		return imag(roots[i]) < imag(roots[j])
	})
	return roots, nil
}

// toFloat converts a coefficient through its canonical text. Complex
// coefficients must be real.
func toFloat[T any](p *arith.Provider[T], c T) (float64, error) {
	text := p.Format(c)
	if p.IsComplex() {
		z, err := arith.Complex128{}.Parse(text)
		if err != nil {
			return 0, err
		}
		if imag(z) != 0 {
			return 0, fmt.Errorf("%w: numeric roots need real coefficients, got %s", ErrUnsupported, text)
		}
		return real(z), nil
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return 0, fmt.Errorf("%w: coefficient %s is not a real number", ErrUnsupported, text)
	}
	f, _ := r.Float64()
	return f, nil
}
