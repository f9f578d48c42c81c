// Package config loads and validates pipeline configuration.
//
// Configuration comes from an optional YAML file with ${VAR} environment
// expansion, followed by POSTGRES_* environment overrides for the database
// connection. Defaults are applied for everything left unset, so the
// pipeline runs with no config file at all given the POSTGRES_* variables.
package config
