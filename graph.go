package depgraph

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Graph is an ordered, immutable list of registrations plus a private cache
// for [Named] and [Shared] instances. Build one with [New]; resolve values
// with [Resolve] and [ResolveNamed].
//
// A Graph is safe for concurrent use. Cached values never leak between
// graphs, even when they are built from the same items.
type Graph struct {
	id     uuid.UUID
	items  []Item
	logger *slog.Logger
	cache  *scopedCache

	closeMu sync.Mutex
	closed  bool
}

// New builds a graph from the given parts, flattened in order. See
// [Compose] for conditional composition.
func New(parts ...Part) *Graph {
	return NewWithOptions(parts)
}

// NewWithOptions is [New] with construction options.
func NewWithOptions(parts []Part, opts ...Option) *Graph {
	g := &Graph{
		id:     uuid.New(),
		items:  flatten(parts),
		logger: slog.New(slog.DiscardHandler),
		cache:  newScopedCache(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the graph identifier. Every graph gets a new random id unless
// [WithID] is used.
func (g *Graph) ID() uuid.UUID { return g.id }

// Len returns the number of registrations.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// Items returns a copy of the registrations in order. It makes a Graph
// usable as a [Part] of another graph; the cache is not carried over.
func (g *Graph) Items() []Item {
	if g == nil {
		return nil
	}
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// find returns the first item, in registration order, that answers the
// query. Later items with the same type and scope are shadowed.
func (g *Graph) find(t reflect.Type, query Scope) (Item, bool) {
	for _, it := range g.items {
		if matches(it.module, t, query) {
			return it, true
		}
	}
	return Item{}, false
}

// resolve implements the lookup shared by every public helper.
//
// A named query first consults the cache directly. Otherwise the matching
// item is located, and its own declared scope decides whether the cache is
// involved at all.
func resolve[T any](g *Graph, query Scope, args Args) (T, bool) {
	var zero T
	if g == nil {
		return zero, false
	}
	t := typeOf[T]()

	if query.IsNamed() {
		k := cacheKey{typ: t, scope: query.descriptor(), args: args.descriptor()}
		if v, ok := g.cache.load(k); ok {
			g.logger.Debug("depgraph: cache hit", "type", t, "scope", query, "graph", g.id)
			out, _ := v.(T)
			return out, true
		}
	}

	it, ok := g.find(t, query)
	if !ok {
		g.logger.Debug("depgraph: no registration", "type", t, "scope", query, "graph", g.id)
		return zero, false
	}

	declared := it.module.scope()
	if declared.IsFresh() {
		return invoke[T](it.module, g, args)
	}

	k := cacheKey{typ: t, scope: declared.descriptor(), args: args.descriptor()}
	v, hit := g.cache.loadOrCompute(k, func() any {
		out, _ := invoke[T](it.module, g, args)
		return out
	})
	if hit {
		g.logger.Debug("depgraph: cache hit", "type", t, "scope", declared, "graph", g.id)
	} else {
		g.logger.Debug("depgraph: cached", "type", t, "scope", declared, "graph", g.id)
	}
	out, _ := v.(T)
	return out, true
}

// Close destroys the cache. Cached values implementing [io.Closer] are closed
// in reverse creation order, so values created later (typically dependents)
// close first. The context bounds the whole operation; once it is done the
// remaining closers are skipped and the context error is part of the result.
//
// A second call returns [ErrAlreadyClosed]. It is the caller's
// responsibility to stop resolving from the graph before closing it.
func (g *Graph) Close(ctx context.Context) error {
	g.closeMu.Lock()
	defer g.closeMu.Unlock()

	if g.closed {
		return ErrAlreadyClosed
	}
	g.closed = true

	values := g.cache.drain()

	var errs []error
	for i := len(values) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		closer, ok := values[i].(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			g.logger.Warn("depgraph: close failed", "type", reflect.TypeOf(values[i]), "error", err, "graph", g.id)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
