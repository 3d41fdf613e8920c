package gopoly

import (
	"errors"
	"fmt"

	"github.com/njchilds90/gopoly/arith"
)

var (
	// ErrFormat is matched by every text parsing failure. The concrete error is *FormatError.
	ErrFormat = errors.New("gopoly: malformed input")
	// ErrArgument reports an invalid argument such as a zero divisor or a non-letter symbol.
	ErrArgument = errors.New("gopoly: invalid argument")
	// ErrUnsupported reports an operation the coefficient type or the algorithm cannot perform.
	ErrUnsupported = arith.ErrUnsupported
	// ErrIncompatibleTerms reports an attempt to add or subtract terms with different monomials.
	ErrIncompatibleTerms = errors.New("gopoly: incompatible terms")
	// ErrNotConverged reports an iterative algorithm that hit its iteration bound.
	ErrNotConverged = errors.New("gopoly: did not converge")
)

// FormatError carries the substring that failed to parse.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("gopoly: cannot parse %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErr(input, reason string, args ...any) error {
	return &FormatError{Input: input, Reason: fmt.Sprintf(reason, args...)}
}
