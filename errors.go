package nodelist

import (
	"github.com/pkg/errors"
)

// Every precondition failure reported by this package wraps one of these two
// classes; match with errors.Is. Both are programmer-error conditions: they
// are detected synchronously at the offending call and are never retried or
// deferred. Detach and Close are deliberately precondition-free and never
// fail.
var (
	// ErrInvalidArgument reports an attach operation given a nil target, or
	// a target that is not currently attached and so has no well-defined
	// before/after position.
	ErrInvalidArgument = errors.New("nodelist: invalid argument")

	// ErrInvalidState reports a cursor operation attempted from a position
	// that structurally forbids it: a null cursor, advancing past the tail
	// boundary, retreating before the head boundary, dereferencing a
	// boundary, or removing a non-attached element.
	ErrInvalidState = errors.New("nodelist: invalid state")
)
