// Package depgraph provides a small dependency-resolution graph for Go.
//
// A [Graph] is an ordered list of registrations ([Item]). Each item wraps a
// typed factory and a [Scope]. Values are resolved by result type, an
// optional scope name and optional positional arguments. No reflection is
// used to call factories: the generic helpers recover the typed factory at
// the call site, and a registration for another type is simply skipped.
//
// # Quick Start
//
//	g := depgraph.New(
//		depgraph.ProvideFunc(NewConfig).WithScope(depgraph.Shared),
//		depgraph.ProvideGraph(func(g *depgraph.Graph) *Database {
//			return NewDatabase(depgraph.MustResolve[*Config](g))
//		}),
//	)
//
//	db, ok := depgraph.Resolve[*Database](g)
//
// # Scopes
//
// [Fresh] (default): the factory runs on every resolution.
//
// [Shared]: one value per graph.
//
// [Named]: one value per graph and name. Named registrations are only found
// by [ResolveNamed] with the same name; an unnamed [Resolve] never selects
// them.
//
//	g := depgraph.New(
//		depgraph.ProvideFunc(NewPrimaryDB).WithScope(depgraph.Named("primary")),
//		depgraph.ProvideFunc(NewReplicaDB).WithScope(depgraph.Named("replica")),
//	)
//
//	replica, _ := depgraph.ResolveNamed[*Database](g, "replica")
//
// # Arguments
//
// Arguments passed to a resolve call reach the factory as [Args] and are part
// of the cache key, so a shared registration keeps one value per distinct
// argument list:
//
//	depgraph.Provide(func(_ *depgraph.Graph, args depgraph.Args) *Client {
//		url, _ := depgraph.Arg[string](args, 0)
//		return NewClient(url)
//	}).WithScope(depgraph.Shared)
//
// # Lookup order
//
// The first registration whose type and scope match wins. Later
// registrations for the same type and scope are shadowed.
//
// # Default graph
//
// [Initialize] installs a process-wide default graph, read with [Default].
// Replace it once at startup; the inject package reads it when no graph is
// given explicitly.
package depgraph
