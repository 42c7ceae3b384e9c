// Package config loads, normalizes, and validates the anagrams configuration.
//
// Configuration lives in a TOML file and covers word list resolution,
// filtering rules, output destination, and logging. Command-line flags
// override loaded values; a missing config file is not an error, defaults
// apply. Prefer Load over constructing Config by hand so path expansion and
// validation always run.
package config
