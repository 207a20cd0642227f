// Package config loads application configuration from environment
// variables (IMPORTCLI_ prefix) layered over an optional config.yaml.
// Environment values take precedence over file values; anything left
// unset falls back to the struct tag defaults.
package config
