// Package config loads dataferry configuration from an optional YAML
// file, a discovered .env file, and DATAFERRY_* environment variables,
// in increasing order of precedence. Defaults are applied before
// validation, and validation combines struct tags (validator/v10) with
// section-level checks.
package config
