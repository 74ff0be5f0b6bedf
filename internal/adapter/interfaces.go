// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote configuration service.
//
// The primary abstraction is [ConfigServiceAdapter], which decouples the
// bootstrap layer from the underlying protocol. The package ships a gRPC
// implementation ([NewGRPCConfigAdapter]) and an HTTP/JSON implementation
// ([NewHTTPConfigAdapter]); [NewConfigAdapter] picks one from configuration.
//
// Transport failures are mapped to the sentinel values defined in errors.go so
// that callers can use [errors.Is] regardless of the protocol in use (e.g.
// [ErrApplicationNotFound] for gRPC NotFound and HTTP 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/forward-auth-config/internal/rpc"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_service_adapter_mock.go -package=mock

// ConfigServiceAdapter defines transport-agnostic communication with the
// remote configuration service. Implementations bound every call by the
// configured request timeout and map transport-level errors to the sentinel
// values defined in this package.
type ConfigServiceAdapter interface {
	// GetContext fetches the tenant-wide configuration record.
	GetContext(ctx context.Context) (*rpc.Context, error)

	// GetApplication fetches the application called name. An empty name asks
	// the service for its default application.
	GetApplication(ctx context.Context, name string) (*rpc.Application, error)

	// Close releases the underlying connection.
	Close() error
}
