// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/forward-auth-config/internal/adapter"
	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/internal/mapping"
	"github.com/MKhiriev/forward-auth-config/internal/rpc"
	"github.com/MKhiriev/forward-auth-config/models"
)

// Fetcher runs the startup fetch once. It is not safe for concurrent use;
// the returned properties are.
type Fetcher struct {
	adapter adapter.ConfigServiceAdapter
	policy  Policy
	logger  *logger.Logger

	state    State
	attempts int
	last     error
	result   *rpc.Context
}

// NewFetcher returns a Fetcher in [StateIdle].
func NewFetcher(a adapter.ConfigServiceAdapter, policy Policy, logger *logger.Logger) *Fetcher {
	return &Fetcher{
		adapter: a,
		policy:  policy,
		logger:  logger,
		state:   StateIdle,
	}
}

// Fetch is a shorthand for NewFetcher(a, policy, logger).Run(ctx).
func Fetch(ctx context.Context, a adapter.ConfigServiceAdapter, policy Policy, logger *logger.Logger) (*models.AuthProperties, error) {
	return NewFetcher(a, policy, logger).Run(ctx)
}

// State returns the current state.
func (f *Fetcher) State() State {
	return f.state
}

// Attempts returns the number of remote calls issued so far.
func (f *Fetcher) Attempts() int {
	return f.attempts
}

// Run requests the tenant context until it succeeds or the policy is
// exhausted, then maps it onto fresh [models.AuthProperties] whose
// applications are resolved through the same adapter.
//
// Every failed attempt is logged as one warning. When the policy runs out the
// result is a [*FetchExhaustedError] wrapping the last failure. An attempt
// still in flight when the timeout elapses is abandoned. Run may be called
// only once.
func (f *Fetcher) Run(ctx context.Context) (*models.AuthProperties, error) {
	if f.state != StateIdle {
		return nil, errors.New("fetcher already ran")
	}
	if err := f.policy.Validate(); err != nil {
		f.state = StateFailed
		return nil, err
	}

	start := time.Now()
	if f.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.policy.Timeout)
		defer cancel()
	}
	schedule := f.policy.schedule()

	f.state = StateRequesting
	for !f.state.Terminal() {
		switch f.state {
		case StateRequesting:
			f.request(ctx)
		case StateRetrying:
			f.wait(ctx, schedule)
		}
	}

	if f.state == StateFailed {
		return nil, &FetchExhaustedError{
			Attempts: f.attempts,
			Elapsed:  time.Since(start),
			Last:     f.last,
		}
	}

	props := models.NewAuthProperties(NewApplicationLookup(f.adapter))
	mapping.For[rpc.Context, models.AuthProperties]().Map(f.result, props)

	f.logger.Info().
		Int("attempts", f.attempts).
		Dur("elapsed", time.Since(start)).
		Str("domain", props.Domain).
		Msg("configuration fetched")

	return props, nil
}

func (f *Fetcher) request(ctx context.Context) {
	f.attempts++

	msg, err := f.adapter.GetContext(ctx)
	if err == nil && msg == nil {
		err = errors.New("empty context response")
	}
	if err != nil {
		f.last = err
		f.logger.Warn().Int("attempt", f.attempts).Msg(warningMessage(err))
		f.state = StateRetrying
		return
	}

	f.result = msg
	f.state = StateSucceeded
}

func (f *Fetcher) wait(ctx context.Context, schedule retry.Backoff) {
	if ctx.Err() != nil {
		f.state = StateFailed
		return
	}

	next, stop := schedule.Next()
	if stop {
		f.state = StateFailed
		return
	}

	timer := time.NewTimer(next)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		f.state = StateFailed
	case <-timer.C:
		f.state = StateRequesting
	}
}
