package config

import "errors"

var (
	// ErrReadConfig is returned when a configuration file cannot be read.
	ErrReadConfig = errors.New("config: read file")
	// ErrParseConfig is returned for malformed YAML.
	ErrParseConfig = errors.New("config: parse yaml")
	// ErrParseEnv is returned when environment values do not parse.
	ErrParseEnv = errors.New("config: parse environment")
	// ErrInvalidConfig is returned when a value is outside its allowed set.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
