// Package config loads, normalizes and validates the TOML configuration for
// the matcher CLI.
package config
