package depgraph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("runs in order against the graph", func(t *testing.T) {
		g := New(ProvideValue("hello"))
		var seen []string

		err := Setup(context.Background(), g,
			func(_ context.Context, g *Graph) error {
				seen = append(seen, "first:"+MustResolve[string](g))
				return nil
			},
			nil,
			func(context.Context, *Graph) error {
				seen = append(seen, "second")
				return nil
			},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"first:hello", "second"}, seen)
	})

	t.Run("errors are joined and later routines still run", func(t *testing.T) {
		errA := errors.New("a failed")
		errB := errors.New("b failed")
		ran := 0

		err := Setup(context.Background(), New(),
			func(context.Context, *Graph) error { ran++; return errA },
			func(context.Context, *Graph) error { ran++; return errB },
		)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 2, ran)
	})

	t.Run("cancelled context skips remaining routines", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		ran := 0

		err := Setup(ctx, New(),
			func(context.Context, *Graph) error { ran++; cancel(); return nil },
			func(context.Context, *Graph) error { ran++; return nil },
		)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, ran)
	})
}
