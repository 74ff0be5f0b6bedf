// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/forward-auth-config/internal/config"
)

// Policy bounds the startup fetch. Attempts stop at whichever of Timeout and
// MaxAttempts is reached first; a non-positive bound is disabled.
type Policy struct {
	// Backoff is the fixed wait between two attempts.
	Backoff time.Duration
	// Timeout is the wall-clock budget of the whole fetch, waits included.
	Timeout time.Duration
	// MaxAttempts is the ceiling on the number of attempts.
	MaxAttempts int
}

// NewPolicy builds a Policy from the retry configuration.
func NewPolicy(cfg config.Retry) Policy {
	return Policy{
		Backoff:     cfg.Backoff,
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
	}
}

// Validate reports an error when the policy never waits or has no bound.
func (p Policy) Validate() error {
	if p.Backoff <= 0 {
		return fmt.Errorf("%w: backoff must be positive, got %s", ErrInvalidPolicy, p.Backoff)
	}
	if p.Timeout <= 0 && p.MaxAttempts <= 0 {
		return fmt.Errorf("%w: neither timeout nor attempt ceiling is set", ErrInvalidPolicy)
	}
	return nil
}

// schedule returns the wait sequence between attempts. Its clock starts when
// it is called.
func (p Policy) schedule() retry.Backoff {
	b := retry.NewConstant(p.Backoff)
	if p.MaxAttempts > 0 {
		b = retry.WithMaxRetries(uint64(p.MaxAttempts-1), b)
	}
	if p.Timeout > 0 {
		b = retry.WithMaxDuration(p.Timeout, b)
	}
	return b
}
