package bootstrap

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrFetchExhausted matches every error returned by [Fetch] after the
	// policy ran out.
	ErrFetchExhausted = errors.New("configuration fetch exhausted")
	// ErrApplicationLookup matches every error returned by
	// [ApplicationLookup.FindApplication].
	ErrApplicationLookup = errors.New("application lookup failed")
	// ErrInvalidApplication is wrapped by lookup errors for a descriptor the
	// service returned but that did not pass validation.
	ErrInvalidApplication = errors.New("invalid application descriptor")
	// ErrInvalidPolicy is returned for a policy that cannot terminate or
	// never waits.
	ErrInvalidPolicy = errors.New("invalid retry policy")
)

// FetchExhaustedError reports a fetch that ended in [StateFailed]. It unwraps
// to the failure of the last attempt.
type FetchExhaustedError struct {
	Attempts int
	Elapsed  time.Duration
	Last     error
}

func (e *FetchExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempt(s) in %s: %v",
		ErrFetchExhausted, e.Attempts, e.Elapsed.Round(time.Millisecond), e.Last)
}

func (e *FetchExhaustedError) Unwrap() error {
	return e.Last
}

func (e *FetchExhaustedError) Is(target error) bool {
	return target == ErrFetchExhausted
}

// ApplicationLookupError reports a failed per-request application lookup.
// Name is empty when the default application was requested.
type ApplicationLookupError struct {
	Name string
	Err  error
}

func (e *ApplicationLookupError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: default application: %v", ErrApplicationLookup, e.Err)
	}
	return fmt.Sprintf("%s: application %q: %v", ErrApplicationLookup, e.Name, e.Err)
}

func (e *ApplicationLookupError) Unwrap() error {
	return e.Err
}

func (e *ApplicationLookupError) Is(target error) bool {
	return target == ErrApplicationLookup
}
