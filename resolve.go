package depgraph

// ---------------------------------------------------------------------------
// Generic helpers
// ---------------------------------------------------------------------------

// Resolve returns the value registered for type T without a scope name. The
// first matching [Fresh] or [Shared] registration answers; [Named]
// registrations are never selected. args are forwarded to the factory and
// take part in the cache key of shared values.
//
//	db, ok := depgraph.Resolve[*Database](g)
func Resolve[T any](g *Graph, args ...any) (T, bool) {
	return resolve[T](g, Fresh, Args(args))
}

// ResolveNamed returns the value registered for type T in the named scope.
//
//	primary, ok := depgraph.ResolveNamed[*Database](g, "primary")
func ResolveNamed[T any](g *Graph, name Name, args ...any) (T, bool) {
	return resolve[T](g, Named(name), Args(args))
}

// Lookup is [Resolve] with the miss reported as a [*ResolveError].
func Lookup[T any](g *Graph, args ...any) (T, error) {
	v, ok := Resolve[T](g, args...)
	if !ok {
		return v, &ResolveError{Type: typeOf[T](), Scope: Fresh, Args: args}
	}
	return v, nil
}

// LookupNamed is [ResolveNamed] with the miss reported as a [*ResolveError].
func LookupNamed[T any](g *Graph, name Name, args ...any) (T, error) {
	v, ok := ResolveNamed[T](g, name, args...)
	if !ok {
		return v, &ResolveError{Type: typeOf[T](), Scope: Named(name), Args: args}
	}
	return v, nil
}

// MustResolve is like [Resolve] but panics with a [*ResolveError] on a miss.
// Use it where a missing registration is a programming error.
func MustResolve[T any](g *Graph, args ...any) T {
	v, err := Lookup[T](g, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// MustResolveNamed is like [ResolveNamed] but panics on a miss.
func MustResolveNamed[T any](g *Graph, name Name, args ...any) T {
	v, err := LookupNamed[T](g, name, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// Provides reports whether a registration in g answers T under the query
// scope, without invoking any factory. Pass [Fresh] for an unnamed query.
func Provides[T any](g *Graph, query Scope) bool {
	if g == nil {
		return false
	}
	_, ok := g.find(typeOf[T](), query)
	return ok
}
