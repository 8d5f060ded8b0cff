// Package config loads the processor configuration: environment variables,
// an optional TOML or YAML profile file, and persistent GUI preferences.
package config
