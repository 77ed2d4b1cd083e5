package depgraph

import (
	"context"
	"errors"
)

// SetupFunc is a startup routine that pulls what it needs from the graph,
// e.g. to register handlers or warm a connection pool.
type SetupFunc func(ctx context.Context, g *Graph) error

// Setup runs fns in order against g. Every routine runs even if an earlier
// one fails; the errors are joined. Once ctx is done the remaining routines
// are skipped and the context error is part of the result.
func Setup(ctx context.Context, g *Graph, fns ...SetupFunc) error {
	var errs []error
	for _, fn := range fns {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if fn == nil {
			continue
		}
		if err := fn(ctx, g); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
