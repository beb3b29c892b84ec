package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, an empty signing key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate-limit settings
	// (for example, a zero request budget or a non-positive window).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate-limit configuration")
)
