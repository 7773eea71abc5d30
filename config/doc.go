// Package config loads TOML settings for the arffengine CLI.
//
// This package implements:
// - The Config struct with missing tokens, output format and job count
// - TOML file loading with built-in defaults when no file exists
// - Validation of values the tool cannot honor
package config
