// Package config loads, normalizes, and validates holocron configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files from the first location that exists: an explicit path, the
// user config directory, or holocron.toml in the working directory. A missing
// file is not an error; the defaults describe a working setup that talks to
// the public swapi.tech API and keeps its cache next to the caller.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log levels, and clear validation errors.
package config
