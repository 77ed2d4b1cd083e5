// Package inject pulls values out of a depgraph.Graph into struct fields.
//
// Three injection points are provided:
//
//   - [Eager] resolves immediately, typically while the owning value is
//     constructed.
//   - [Lazy] resolves on first read and keeps the value for the life of the
//     owner.
//   - [Mutable] resolves like Lazy, and the owner may overwrite the value
//     afterwards.
//
// All of them treat a missing registration as a programming error and panic
// with a *depgraph.ResolveError: registrations are expected to be complete
// before any injection point is read.
package inject

import (
	"sync"
	"sync/atomic"

	"github.com/ARTM2000/depgraph"
)

// Point selects what an injection point resolves. The zero Point resolves
// the unnamed registration from the default graph.
type Point struct {
	// Graph to resolve from. Nil means depgraph.Default() at resolution time.
	Graph *depgraph.Graph

	// Name selects a named scope. Empty means an unnamed query.
	Name depgraph.Name

	// Args are forwarded to the factory.
	Args []any
}

func (p Point) graph() *depgraph.Graph {
	if p.Graph != nil {
		return p.Graph
	}
	return depgraph.Default()
}

func resolvePoint[T any](p Point) T {
	if p.Name != "" {
		return depgraph.MustResolveNamed[T](p.graph(), p.Name, p.Args...)
	}
	return depgraph.MustResolve[T](p.graph(), p.Args...)
}

// Eager resolves p right away.
//
//	svc := &UserService{
//		repo: inject.Eager[*UserRepository](inject.Point{}),
//	}
func Eager[T any](p Point) T {
	return resolvePoint[T](p)
}

// Lazy defers resolution until the first call to Get. The zero value reads
// the default graph; set the embedded Point to choose another graph, scope
// name or arguments. A Lazy must not be copied after first use.
//
//	type Handler struct {
//		Users inject.Lazy[*UserService]
//	}
type Lazy[T any] struct {
	Point

	// Mutators run in order on the freshly resolved value, exactly once,
	// before Get returns it for the first time. They change the local copy
	// only; for pointer types that is the object the graph handed out.
	Mutators []func(*T)

	mu    sync.Mutex
	done  atomic.Bool
	value T
}

// Get returns the value, resolving it on the first call. If resolution
// panics, the next call tries again.
func (l *Lazy[T]) Get() T {
	if l.done.Load() {
		return l.value
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.done.Load() {
		v := resolvePoint[T](l.Point)
		for _, mutate := range l.Mutators {
			if mutate != nil {
				mutate(&v)
			}
		}
		l.value = v
		l.done.Store(true)
	}
	return l.value
}

// Resolved reports whether Get has completed its first resolution.
func (l *Lazy[T]) Resolved() bool {
	return l.done.Load()
}

// Mutable is a lazily resolved value that can be replaced with Set.
// Replacing the value never touches the graph or its cache. Mutable is safe
// for concurrent use and must not be copied after first use.
type Mutable[T any] struct {
	Point

	// Mutators behave as in [Lazy].
	Mutators []func(*T)

	init sync.Once
	lazy Lazy[T]

	localMu sync.RWMutex
	set     bool
	local   T
}

// Get returns the value set with Set, or else the lazily resolved value.
func (m *Mutable[T]) Get() T {
	m.localMu.RLock()
	if m.set {
		v := m.local
		m.localMu.RUnlock()
		return v
	}
	m.localMu.RUnlock()

	m.init.Do(func() {
		m.lazy.Point = m.Point
		m.lazy.Mutators = m.Mutators
	})
	return m.lazy.Get()
}

// Set replaces the value returned by Get.
func (m *Mutable[T]) Set(v T) {
	m.localMu.Lock()
	defer m.localMu.Unlock()
	m.local = v
	m.set = true
}

// Resolved reports whether the graph has been consulted.
func (m *Mutable[T]) Resolved() bool {
	return m.lazy.Resolved()
}
