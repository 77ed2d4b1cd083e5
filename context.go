package depgraph

import "context"

// graphKey is an unexported type to prevent collisions with context keys
// from other packages.
type graphKey struct{}

// WithGraph returns a copy of ctx carrying g.
func WithGraph(ctx context.Context, g *Graph) context.Context {
	return context.WithValue(ctx, graphKey{}, g)
}

// FromContext returns the graph stored by [WithGraph], or [Default] when
// ctx carries none.
func FromContext(ctx context.Context) *Graph {
	if g, ok := ctx.Value(graphKey{}).(*Graph); ok && g != nil {
		return g
	}
	return Default()
}
