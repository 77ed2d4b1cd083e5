package depgraph

// Name identifies a named scope. Names are plain comparable values chosen at
// registration time:
//
//	const Primary depgraph.Name = "primary"
type Name string

type scopeKind uint8

const (
	freshKind scopeKind = iota
	namedKind
	sharedKind
)

// Scope controls how long a resolved value lives inside a [Graph].
//
// Scope is comparable: two scopes are equal when they are the same variant
// and, for named scopes, carry the same [Name]. The zero value is [Fresh].
type Scope struct {
	kind scopeKind
	name Name
}

var (
	// Fresh builds a new value on every resolution. Nothing is cached.
	Fresh = Scope{kind: freshKind}

	// Shared keeps a single value per graph, independent of any name.
	Shared = Scope{kind: sharedKind}
)

// Named returns a scope cached per distinct name within one graph. Named
// registrations are only reachable through [ResolveNamed] with the same name.
func Named(name Name) Scope {
	return Scope{kind: namedKind, name: name}
}

// IsFresh reports whether s is [Fresh].
func (s Scope) IsFresh() bool { return s.kind == freshKind }

// IsShared reports whether s is [Shared].
func (s Scope) IsShared() bool { return s.kind == sharedKind }

// IsNamed reports whether s was built with [Named].
func (s Scope) IsNamed() bool { return s.kind == namedKind }

// Name returns the scope name and true for named scopes.
func (s Scope) Name() (Name, bool) {
	if s.kind != namedKind {
		return "", false
	}
	return s.name, true
}

// descriptor is the scope's contribution to a cache key.
func (s Scope) descriptor() string {
	switch s.kind {
	case namedKind:
		return "{named:" + string(s.name) + "}"
	case sharedKind:
		return "{shared}"
	default:
		return ""
	}
}

// String returns the human-readable name of the scope.
func (s Scope) String() string {
	switch s.kind {
	case freshKind:
		return "fresh"
	case namedKind:
		return "named(" + string(s.name) + ")"
	case sharedKind:
		return "shared"
	default:
		return "unknown"
	}
}
