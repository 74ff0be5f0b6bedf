// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.GRPCAddress == "" && cfg.Remote.HTTPAddress == "" {
		return fmt.Errorf("%w: no service address", ErrInvalidRemoteConfigs)
	}

	if cfg.Remote.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidRemoteConfigs)
	}

	if cfg.Retry.Backoff <= 0 {
		return fmt.Errorf("%w: backoff must be positive", ErrInvalidRetryConfigs)
	}

	if cfg.Retry.Timeout <= 0 && cfg.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("%w: neither timeout nor attempt ceiling is set", ErrInvalidRetryConfigs)
	}

	return nil
}
