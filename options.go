package depgraph

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a [Graph] during construction.
type Option func(*Graph)

// WithLogger sets the logger used for resolution events. Events are emitted
// at debug level, except close failures which are warnings. The default
// logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithID overrides the randomly generated graph identifier.
func WithID(id uuid.UUID) Option {
	return func(g *Graph) {
		g.id = id
	}
}
