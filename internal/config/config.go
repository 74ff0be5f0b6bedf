// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// forward-auth bootstrap process. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Remote holds the address and call timeout of the remote configuration
	// service.
	Remote Remote `envPrefix:"REMOTE_"`

	// Retry bounds the startup fetch of the remote configuration.
	Retry Retry `envPrefix:"RETRY_"`

	// Server holds the listen address of the diagnostic HTTP surface.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application, exposed via
	// the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds the connection settings of the remote configuration service.
// When both addresses are set the gRPC transport is used.
type Remote struct {
	// GRPCAddress is the gRPC target of the configuration service,
	// in "host:port" format (e.g. "tfa-config:9090").
	// Env: REMOTE_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// HTTPAddress is the base URL of the configuration service's HTTP/JSON
	// gateway (e.g. "http://tfa-config:8080").
	// Env: REMOTE_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every single remote call.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Retry bounds the startup fetch. The fetch stops at whichever bound is hit
// first; a negative value disables that bound.
type Retry struct {
	// Backoff is the fixed wait between two attempts.
	// Env: RETRY_BACKOFF
	Backoff time.Duration `env:"BACKOFF"`

	// Timeout is the wall-clock budget of the whole fetch.
	// Env: RETRY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// MaxAttempts is the ceiling on the number of attempts.
	// Env: RETRY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Server holds network settings for the diagnostic HTTP surface.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Empty disables the
	// surface.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Defaults returns the built-in configuration: a 3s fixed backoff bounded by
// one minute and twenty attempts, and a 10s call timeout.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "N/A",
		},
		Remote: Remote{
			RequestTimeout: 10 * time.Second,
		},
		Retry: Retry{
			Backoff:     3 * time.Second,
			Timeout:     time.Minute,
			MaxAttempts: 20,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables, including those of an optional .env file
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
