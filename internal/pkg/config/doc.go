// Package config loads and validates the server configuration.
//
// Settings come from a YAML file selected by CONFIG_PATH, with environment
// variables overriding individual keys and an optional .env file loaded at
// startup. Every settings struct validates itself before use.
package config
