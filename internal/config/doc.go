// Package config loads, normalizes, and validates simnet configuration data.
//
// It supplies defaults for every sweep, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SIMNET_OUTPUT_DIR environment
// fallback. Fingerprint overrides live here as [[corpus.overrides]] tables so a
// dataset's corrections travel with the rest of its settings.
package config
