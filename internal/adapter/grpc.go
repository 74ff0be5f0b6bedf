// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/forward-auth-config/internal/config"
	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/internal/rpc"
)

type grpcConfigAdapter struct {
	conn    *grpc.ClientConn
	client  rpc.TFAAuth0ServiceClient
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCConfigAdapter constructs a gRPC implementation of
// [ConfigServiceAdapter] targeting remoteCfg.GRPCAddress. The connection is
// plaintext unless opts override the transport credentials; it is created
// lazily, so an unreachable service is reported by the first call rather than
// here.
//
// Returns an error if the address is empty or the client cannot be built.
func NewGRPCConfigAdapter(remoteCfg config.Remote, logger *logger.Logger, opts ...grpc.DialOption) (ConfigServiceAdapter, error) {
	target := strings.TrimSpace(remoteCfg.GRPCAddress)
	if target == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", ErrNoServiceAddress)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcConfigAdapter{
		conn:    conn,
		client:  rpc.NewTFAAuth0ServiceClient(conn),
		timeout: remoteCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// GetContext implements [ConfigServiceAdapter].
func (g *grpcConfigAdapter) GetContext(ctx context.Context) (*rpc.Context, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	msg, err := g.client.GetContext(ctx, &rpc.Empty{})
	if err != nil {
		return nil, fmt.Errorf("get context: %w", mapGRPCError(err))
	}

	return msg, nil
}

// GetApplication implements [ConfigServiceAdapter]. An empty name is sent as
// an absent field.
func (g *grpcConfigAdapter) GetApplication(ctx context.Context, name string) (*rpc.Application, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	req := &rpc.ApplicationRequest{}
	if name != "" {
		req.Name = &name
	}

	msg, err := g.client.GetApplication(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("get application %q: %w", name, mapGRPCError(err))
	}

	return msg, nil
}

// Close implements [ConfigServiceAdapter].
func (g *grpcConfigAdapter) Close() error {
	g.logger.Debug().Str("target", g.conn.Target()).Msg("closing grpc connection")
	return g.conn.Close()
}

func (g *grpcConfigAdapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}
