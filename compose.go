package depgraph

// Part is anything that contributes registrations to a graph: a single
// [Item], an [Items] list, a whole [Graph], or the result of [Compose], [If]
// and [Either].
type Part interface {
	Items() []Item
}

// Items is a plain list of registrations.
type Items []Item

// Items implements [Part].
func (l Items) Items() []Item { return l }

// Compose flattens parts into one ordered list. Relative order is kept, so
// the first registration still wins during resolution:
//
//	g := depgraph.New(
//		depgraph.ProvideFunc(NewConfig).WithScope(depgraph.Shared),
//		depgraph.If(cfg.Debug, debugItems),
//		depgraph.Either(cfg.InMemory, memoryStore, sqlStore),
//	)
func Compose(parts ...Part) Items {
	return flatten(parts)
}

// If contributes parts when cond is true and nothing otherwise.
func If(cond bool, parts ...Part) Items {
	if !cond {
		return nil
	}
	return flatten(parts)
}

// Either contributes first when cond is true and second otherwise.
func Either(cond bool, first, second Part) Items {
	if cond {
		return flatten([]Part{first})
	}
	return flatten([]Part{second})
}

func flatten(parts []Part) Items {
	var out Items
	for _, p := range parts {
		if p == nil {
			continue
		}
		out = append(out, p.Items()...)
	}
	return out
}
