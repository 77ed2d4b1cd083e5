package depgraph

import "reflect"

// module is the type-erased form of a registration. Graphs hold modules of
// unrelated result types side by side; the concrete result type is only
// recovered by [invoke] at the call site that asks for it.
type module interface {
	// tag identifies the result type the handle was built to produce.
	tag() reflect.Type
	scope() Scope
	// withScope returns a copy bound to s. The handle is not touched.
	withScope(s Scope) module
}

// handler is the only module implementation. Its type parameter is the
// result type, so a type assertion to handler[T] is the compatibility test.
type handler[T any] struct {
	fn     func(*Graph, Args) T
	typ    reflect.Type
	scoped Scope
}

func wrap[T any](fn func(*Graph, Args) T, s Scope) module {
	return handler[T]{fn: fn, typ: typeOf[T](), scoped: s}
}

func (h handler[T]) tag() reflect.Type { return h.typ }

func (h handler[T]) scope() Scope { return h.scoped }

func (h handler[T]) withScope(s Scope) module {
	h.scoped = s
	return h
}

// matches reports whether m can answer a query for result type t under the
// query scope. A named query needs an exact scope match; an unnamed query
// never selects a named registration.
func matches(m module, t reflect.Type, query Scope) bool {
	if m == nil || m.tag() != t {
		return false
	}
	if query.IsNamed() {
		return m.scope() == query
	}
	return !m.scope().IsNamed()
}

// invoke runs m for result type T. A module built for another type reports
// a miss instead of panicking.
func invoke[T any](m module, g *Graph, args Args) (T, bool) {
	h, ok := m.(handler[T])
	if !ok {
		var zero T
		return zero, false
	}
	return h.fn(g, args), true
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
