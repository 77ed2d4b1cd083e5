// Package config shares its name and type name with
// internal/fixture/alpha/config.
package config

type Config struct {
	Name string
}
