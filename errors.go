package ttable

import "errors"

// Common errors used throughout the ttable package
var (
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
)
