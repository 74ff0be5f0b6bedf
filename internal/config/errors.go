package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote service settings
	// (for example, no address at all or a non-positive request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidRetryConfigs indicates an unusable retry policy
	// (for example, a non-positive backoff or both bounds disabled).
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrUnsupportedConfigFile indicates a config file whose extension is
	// neither .json nor .yaml/.yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
