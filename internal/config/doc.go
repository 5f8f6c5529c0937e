// Package config loads, normalizes, and validates aspectsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// FFPROBE_PATH. The Config type centralizes every knob the sorter and CLI
// need: the default limiter, move-versus-copy, output layout, recognised
// media extensions, ffprobe settings, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, lower-cased extensions, and clear validation errors.
package config
