package kumiki

import "github.com/rotisserie/eris"

var (
	// ErrComponentNotFound is returned when a component, or a single-match
	// query, has no match.
	ErrComponentNotFound = eris.New("component not found")
	// ErrMultipleComponentsFound is returned when a single-match query
	// matches two or more entities.
	ErrMultipleComponentsFound = eris.New("multiple components found")
	// ErrEntityNotFound is returned by every operation addressed to an
	// entity that is not present.
	ErrEntityNotFound = eris.New("entity not found")
	// ErrUnsatisfiedRequirements is returned by World.AddSystem when the
	// system rejects the current Assembly.
	ErrUnsatisfiedRequirements = eris.New("unsatisfied requirements")
	// ErrUnimplementedStage is returned by World.AddSystem when a system
	// subscribes to a loop stage it has no hook for. It is also the panic
	// value when such a subscription appears later during dispatch.
	ErrUnimplementedStage = eris.New("loop stage not implemented")
	// ErrBorrowConflict is the panic value raised when an Assembly is
	// accessed in a way that would alias a live write borrow, or mutate
	// storage under a live read borrow.
	ErrBorrowConflict = eris.New("assembly borrow conflict")
	// ErrResourceExists is returned when a resource of the same type is
	// already stored.
	ErrResourceExists = eris.New("resource already exists")
	// ErrResourceNotFound is returned when no resource of the requested type
	// is stored.
	ErrResourceNotFound = eris.New("resource not found")
)
