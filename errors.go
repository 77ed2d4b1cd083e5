package depgraph

import (
	"errors"
	"reflect"
)

var (
	// ErrNotResolved is wrapped by every [ResolveError]. A plain miss from
	// [Resolve] is reported through its bool result instead.
	ErrNotResolved = errors.New("no registration matches")

	// ErrAlreadyClosed is returned when Close is called on a graph that has
	// already been closed.
	ErrAlreadyClosed = errors.New("graph already closed")
)

// ResolveError describes a query that no registration answered. It is
// returned by [Lookup] and [LookupNamed] and is the panic value of the
// Must* helpers and the inject package.
type ResolveError struct {
	Type  reflect.Type
	Scope Scope
	Args  Args
}

func (e *ResolveError) Error() string {
	msg := "depgraph: " + ErrNotResolved.Error() + " " + e.Type.String()
	if e.Scope.IsNamed() {
		msg += " in scope " + e.Scope.String()
	}
	if len(e.Args) > 0 {
		msg += " with arguments " + e.Args.String()
	}
	return msg
}

func (e *ResolveError) Unwrap() error { return ErrNotResolved }
