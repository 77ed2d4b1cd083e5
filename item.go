package depgraph

import (
	"fmt"
	"reflect"
	"strings"
)

// Args are the positional arguments forwarded from a resolve call to the
// matching factory.
type Args []any

// Len returns the number of arguments.
func (a Args) Len() int { return len(a) }

// At returns the argument at index i, or nil when i is out of range.
func (a Args) At(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// String renders the arguments for messages.
func (a Args) String() string {
	return fmt.Sprint([]any(a))
}

// descriptor is the arguments' contribution to a cache key. Each element is
// rendered with its dynamic type and Go-syntax value, so lists that only
// print alike (1 and "1", "a b" and "a", "b") get distinct keys.
func (a Args) descriptor() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%T:%#v", v, v)
	}
	b.WriteByte(']')
	return b.String()
}

// Arg returns the argument at index i typed as T. ok is false when the index
// is out of range or the argument has another type.
func Arg[T any](a Args, i int) (T, bool) {
	v, ok := a.At(i).(T)
	return v, ok
}

// Item is a single registration: one factory bound to a declared [Scope].
// Items are immutable values; [Item.WithScope] returns a modified copy.
type Item struct {
	module module
}

// Provide registers a factory that receives the owning graph and the
// arguments of the resolve call. Use the graph to resolve other items:
//
//	depgraph.Provide(func(g *depgraph.Graph, args depgraph.Args) *Repo {
//		db, _ := depgraph.Resolve[*DB](g)
//		return &Repo{DB: db}
//	})
func Provide[T any](fn func(g *Graph, args Args) T) Item {
	return Item{module: wrap(fn, Fresh)}
}

// ProvideGraph registers a factory that only needs the owning graph.
func ProvideGraph[T any](fn func(g *Graph) T) Item {
	return Item{module: wrap(func(g *Graph, _ Args) T { return fn(g) }, Fresh)}
}

// ProvideFunc registers a self-contained factory.
func ProvideFunc[T any](fn func() T) Item {
	return Item{module: wrap(func(*Graph, Args) T { return fn() }, Fresh)}
}

// ProvideValue registers a constant. With the default [Fresh] scope every
// resolution returns v itself, so for pointer types all callers share it.
func ProvideValue[T any](v T) Item {
	return Item{module: wrap(func(*Graph, Args) T { return v }, Fresh)}
}

// WithScope returns a copy of the item bound to s.
func (i Item) WithScope(s Scope) Item {
	if i.module == nil {
		return i
	}
	return Item{module: i.module.withScope(s)}
}

// Scope returns the declared scope.
func (i Item) Scope() Scope {
	if i.module == nil {
		return Fresh
	}
	return i.module.scope()
}

// Type returns the result type of the factory, or nil for the zero Item.
func (i Item) Type() reflect.Type {
	if i.module == nil {
		return nil
	}
	return i.module.tag()
}

// Items implements [Part].
func (i Item) Items() []Item { return []Item{i} }

// String describes the registration, e.g. "*main.Config (shared)".
func (i Item) String() string {
	t := i.Type()
	if t == nil {
		return "<empty>"
	}
	return fmt.Sprintf("%s (%s)", t, i.Scope())
}
