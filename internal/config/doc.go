// Package config loads, normalizes, and validates makhela's TOML
// configuration.
//
// Configuration is optional: every field has a usable default, so the CLI
// runs without a config file. When a file exists (either the default
// ~/.config/makhela/config.toml or a project-local makhela.toml) its values
// override the defaults and are validated before use.
package config
