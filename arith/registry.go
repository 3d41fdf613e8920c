package arith

import (
	"fmt"
	"math/big"
	"reflect"
	"sync"

	"github.com/holiman/uint256"
	"golang.org/x/sync/singleflight"
)

// ============================================================
// Registry
// ============================================================

var (
	factories sync.Map // reflect.Type -> func() (any, error)
	providers sync.Map // reflect.Type -> *Provider[T]
	building  singleflight.Group
)

// Register installs the factory that builds the provider for T and drops any
// provider already cached for it.
func Register[T any](factory func() (*Provider[T], error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	factories.Store(t, func() (any, error) { return factory() })
	providers.Delete(t)
}

// RegisterKernel is Register for the common case of a named kernel.
func RegisterKernel[T any](name string, k Kernel[T]) {
	Register(func() (*Provider[T], error) { return New(name, k) })
}

// Lookup returns the shared provider for T, building it on first use.
// Concurrent first lookups build it once.
func Lookup[T any]() (*Provider[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if p, ok := providers.Load(t); ok {
		return p.(*Provider[T]), nil
	}
	v, err, _ := building.Do(fmt.Sprintf("%s@%p", t, t), func() (any, error) {
		if p, ok := providers.Load(t); ok {
			return p, nil
		}
		f, ok := factories.Load(t)
		if !ok {
			return nil, fmt.Errorf("%w: no provider registered for %s", ErrUnsupported, t)
		}
		p, err := f.(func() (any, error))()
		if err != nil {
			return nil, err
		}
		providers.Store(t, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Provider[T]), nil
}

// MustLookup is Lookup that panics when T has no provider.
func MustLookup[T any]() *Provider[T] {
	p, err := Lookup[T]()
	if err != nil {
		panic(err)
	}
	return p
}

func init() {
	RegisterKernel[int]("int", Signed[int]{})
	RegisterKernel[int32]("int32", Signed[int32]{})
	RegisterKernel[int64]("int64", Signed[int64]{})
	RegisterKernel[float32]("float32", Float[float32]{})
	RegisterKernel[float64]("float64", Float[float64]{})
	RegisterKernel[*big.Int]("bigint", BigInt{})
	RegisterKernel[*big.Rat]("rational", BigRat{})
	RegisterKernel[uint256.Int]("int256", Int256{})
	RegisterKernel[complex128]("complex", Complex128{})
}
