// Package config handles application configuration loading and validation.
//
// Configuration is loaded from environment variables, optionally seeded from
// a local KEY=VALUE file, with defaults for everything except the forward
// URL. All values are validated at startup to fail fast if misconfigured.
package config
