// Package config handles configuration management for civix.
// It layers built-in TOML defaults, the user's config file, an optional
// per-extension file, CIVIX_* environment variables and command-line
// overrides using koanf.
package config
