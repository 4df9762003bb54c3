package config

import "errors"

// Package-specific errors
var (
	// ErrLoadingEnv is returned when a named .env file cannot be read.
	ErrLoadingEnv = errors.New("failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
