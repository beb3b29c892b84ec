// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.RateLimit.AuthLimit < 1 || cfg.RateLimit.APILimit < 1 {
		return ErrInvalidRateLimitConfigs
	}
	if cfg.RateLimit.AuthWindow <= 0 || cfg.RateLimit.APIWindow <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
