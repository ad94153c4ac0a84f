package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLayoutNotFound   = errors.New("layout not found")
	ErrParentNotFound   = errors.New("parent layout not found")
	ErrInheritanceCycle = errors.New("inheritance cycle")
	ErrNestingCycle     = errors.New("nested grid cycle")
)

// ResolutionError describes why a layout could not be resolved. Kind is one
// of the Err* sentinels and is matched by errors.Is.
type ResolutionError struct {
	Kind error
	// Name is the missing layout, or the layout being resolved for cycles.
	Name string
	// RequestedBy is the layout whose `extends` names a missing parent.
	RequestedBy string
	// Path lists the names forming a cycle.
	Path []string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	switch e.Kind {
	case ErrParentNotFound:
		return fmt.Sprintf("%v: %q (extended by %q)", e.Kind, e.Name, e.RequestedBy)
	case ErrInheritanceCycle:
		return fmt.Sprintf("%v: %s", e.Kind, strings.Join(e.Path, " -> "))
	case ErrNestingCycle:
		return fmt.Sprintf("%v in layout %q: %s", e.Kind, e.Name, strings.Join(e.Path, " -> "))
	default:
		return fmt.Sprintf("%v: %q", e.Kind, e.Name)
	}
}

// Unwrap exposes the sentinel kind.
func (e *ResolutionError) Unwrap() error {
	return e.Kind
}
