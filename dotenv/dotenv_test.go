package dotenv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARTM2000/depgraph"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestItems(t *testing.T) {
	items := Items(map[string]string{"B": "2", "A": "1"})
	require.Len(t, items, 2)

	assert.Equal(t, depgraph.Named("A"), items[0].Scope(), "sorted by key")
	assert.Equal(t, depgraph.Named("B"), items[1].Scope())

	g := depgraph.New(items)
	v, ok := depgraph.ResolveNamed[string](g, "B")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = depgraph.Resolve[string](g)
	assert.False(t, ok, "values are only reachable by name")
}

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader("DATABASE_URL=postgres://db\n# comment\nLOG_LEVEL=\"debug\"\n"))
	require.NoError(t, err)

	g := depgraph.New(items)
	assert.Equal(t, "postgres://db", depgraph.MustResolveNamed[string](g, "DATABASE_URL"))
	assert.Equal(t, "debug", depgraph.MustResolveNamed[string](g, "LOG_LEVEL"))
}

func TestRead(t *testing.T) {
	base := writeEnvFile(t, "APP_ENV=local\nDEPGRAPH_TEST_READ_ONLY=8000\n")

	items, err := Read(base)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	g := depgraph.New(items)
	assert.Equal(t, "8000", depgraph.MustResolveNamed[string](g, "DEPGRAPH_TEST_READ_ONLY"))

	_, set := os.LookupEnv("DEPGRAPH_TEST_READ_ONLY")
	assert.False(t, set, "Read does not export")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "dotenv: read")
}

func TestLoad(t *testing.T) {
	path := writeEnvFile(t, "DEPGRAPH_TEST_FROM_FILE=file\nDEPGRAPH_TEST_PRESET=file\n")
	t.Setenv("DEPGRAPH_TEST_PRESET", "env")
	t.Setenv("DEPGRAPH_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("DEPGRAPH_TEST_FROM_FILE"))

	items, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", os.Getenv("DEPGRAPH_TEST_FROM_FILE"), "exported to the environment")

	g := depgraph.New(items)
	assert.Equal(t, "file", depgraph.MustResolveNamed[string](g, "DEPGRAPH_TEST_FROM_FILE"))
	assert.Equal(t, "env", depgraph.MustResolveNamed[string](g, "DEPGRAPH_TEST_PRESET"), "environment wins")
}
