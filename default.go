package depgraph

import "sync"

var (
	defaultMu    sync.RWMutex
	defaultGraph = New()
)

// Default returns the process-wide default graph. It starts empty and is
// normally replaced once at startup with [Initialize].
func Default() *Graph {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGraph
}

// SetDefault replaces the default graph. A nil graph installs an empty one.
// Values cached by the previous default graph are no longer reachable
// through [Default].
func SetDefault(g *Graph) {
	if g == nil {
		g = New()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultGraph = g
}

// Initialize builds a graph from parts, installs it as the default graph
// and returns it.
//
//	func main() {
//		depgraph.Initialize(
//			depgraph.ProvideFunc(NewConfig).WithScope(depgraph.Shared),
//			depgraph.Provide(NewDatabase).WithScope(depgraph.Shared),
//		)
//		...
//	}
func Initialize(parts ...Part) *Graph {
	g := New(parts...)
	SetDefault(g)
	return g
}
