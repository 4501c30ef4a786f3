// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml, a .env file and PASSEIO_ prefixed
// environment variables, in increasing order of precedence.
package config
