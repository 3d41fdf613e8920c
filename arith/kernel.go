// Package arith supplies the numeric operations the polynomial engine needs,
// uniformly across coefficient types.
//
// A coefficient type plugs in by implementing Kernel. Optional capabilities
// (a natural order, a complex-like real/imaginary split, a native square
// root) are discovered once, when the Provider for that type is built, and the
// resulting operation table is read-only from then on.
package arith

import "errors"

// ErrUnsupported reports a coefficient type or operation the provider cannot serve.
var ErrUnsupported = errors.New("arith: unsupported")

// ============================================================
// Capability interfaces
// ============================================================

// Kernel is the primitive operation set every coefficient type supplies.
// Implementations must not mutate their arguments.
type Kernel[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Mod(a, b T) T
	Neg(a T) T
	Abs(a T) T
	Trunc(a T) T
	Pow(base, exp T) T
	Log(v T, base float64) T
	Equal(a, b T) bool
	Parse(s string) (T, error)
	Format(v T) string
	Bytes(v T) []byte
	FromInt(n int64) T
	Clone(v T) T
}

// Ordered is implemented by kernels whose values have a natural total order.
type Ordered[T any] interface {
	Cmp(a, b T) int
}

// Complex is implemented by kernels whose values carry a (real, imaginary) pair.
// Such types have no field order; the provider ranks them by SignedMagnitude.
type Complex[T any] interface {
	RealSign(v T) int
	Modulus(v T) float64
}

// Rooter is implemented by kernels with a native square root.
type Rooter[T any] interface {
	Sqrt(v T) T
}
