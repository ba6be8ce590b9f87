// Package config loads, normalizes, and validates rtcalc configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours RTCALC_* environment overrides,
// optionally supplied through a .env file. Always obtain settings through this
// package so the CLI and HTTP server see the same canonical values.
package config
