// Package dotenv turns .env files into graph registrations.
//
// Every key becomes a string item in the named scope of the same name, so
// configuration is read back through the graph:
//
//	items, err := dotenv.Read(".env")
//	if err != nil {
//		return err
//	}
//	g := depgraph.New(items, appItems)
//
//	dsn, ok := depgraph.ResolveNamed[string](g, "DATABASE_URL")
package dotenv

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/ARTM2000/depgraph"
)

// Read parses the given files (".env" when none are given) without touching
// the process environment. Later files override earlier ones.
func Read(filenames ...string) (depgraph.Items, error) {
	values, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("dotenv: read %v: %w", filenames, err)
	}
	return Items(values), nil
}

// Parse reads .env formatted content from r.
func Parse(r io.Reader) (depgraph.Items, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dotenv: parse: %w", err)
	}
	return Items(values), nil
}

// Load is like [Read] but also exports the values into the process
// environment. Variables already set in the environment are kept and win
// over the file, which is godotenv's rule; the returned items follow the
// same rule.
func Load(filenames ...string) (depgraph.Items, error) {
	values, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("dotenv: read %v: %w", filenames, err)
	}
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("dotenv: load %v: %w", filenames, err)
	}
	for k := range values {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}
	return Items(values), nil
}

// Items converts key/value pairs into named string items, sorted by key.
func Items(values map[string]string) depgraph.Items {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make(depgraph.Items, 0, len(keys))
	for _, k := range keys {
		items = append(items, depgraph.ProvideValue(values[k]).WithScope(depgraph.Named(depgraph.Name(k))))
	}
	return items
}
