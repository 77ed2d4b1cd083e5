package depgraph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func TestLookup(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		v, err := Lookup[int](New(ProvideValue(5)))
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	})

	t.Run("miss returns ResolveError", func(t *testing.T) {
		_, err := Lookup[int](New(), 1, "a")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotResolved))

		var re *ResolveError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, reflect.TypeFor[int](), re.Type)
		assert.Equal(t, Fresh, re.Scope)
		assert.Equal(t, Args{1, "a"}, re.Args)
		assert.Equal(t, "depgraph: no registration matches int with arguments [1 a]", err.Error())
	})
}

func TestLookupNamed(t *testing.T) {
	g := New(ProvideValue("primary-dsn").WithScope(Named("primary")))

	v, err := LookupNamed[string](g, "primary")
	require.NoError(t, err)
	assert.Equal(t, "primary-dsn", v)

	_, err = LookupNamed[string](g, "replica")
	require.ErrorIs(t, err, ErrNotResolved)
	assert.Equal(t, "depgraph: no registration matches string in scope named(replica)", err.Error())
}

// ---------------------------------------------------------------------------
// Must*
// ---------------------------------------------------------------------------

func TestMustResolve(t *testing.T) {
	g := New(ProvideValue(5), ProvideValue(6).WithScope(Named("six")))

	assert.Equal(t, 5, MustResolve[int](g))
	assert.Equal(t, 6, MustResolveNamed[int](g, "six"))

	assert.PanicsWithError(t, "depgraph: no registration matches string", func() {
		MustResolve[string](g)
	})
	assert.Panics(t, func() {
		MustResolveNamed[int](g, "seven")
	})
}

func TestMustResolve_PanicValue(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value is an error")
		assert.ErrorIs(t, err, ErrNotResolved)
	}()
	MustResolve[*testLogger](New())
}

// ---------------------------------------------------------------------------
// Provides
// ---------------------------------------------------------------------------

func TestProvides(t *testing.T) {
	calls := 0
	g := New(
		ProvideFunc(func() int { calls++; return 1 }),
		ProvideValue("x").WithScope(Named("n")),
	)

	assert.True(t, Provides[int](g, Fresh))
	assert.False(t, Provides[int](g, Named("n")))
	assert.True(t, Provides[string](g, Named("n")))
	assert.False(t, Provides[string](g, Fresh))
	assert.False(t, Provides[int](nil, Fresh))
	assert.Zero(t, calls, "no factory is invoked")
}
