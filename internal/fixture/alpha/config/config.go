// Package config shares its name and type name with
// internal/fixture/beta/config so tests can register two distinct types
// that print the same.
package config

type Config struct {
	Name string
}
