// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpctest provides an in-process configuration service for tests.
package rpctest

import (
	"context"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/forward-auth-config/internal/rpc"
)

// Target is the dial target understood by [Server.DialOption].
const Target = "passthrough:///bufnet"

const bufSize = 1 << 20

// Service is a scripted TFAAuth0ServiceServer.
type Service struct {
	rpc.UnimplementedTFAAuth0ServiceServer

	mu sync.Mutex

	context            *rpc.Context
	applications       map[string]*rpc.Application
	defaultApplication string

	contextFailures int
	contextCalls    int
	appCalls        int
}

// NewService returns a Service answering GetContext with ctx.
func NewService(ctx *rpc.Context) *Service {
	return &Service{
		context:      ctx,
		applications: make(map[string]*rpc.Application),
	}
}

// AddApplication registers app under app.Name. The first application added
// becomes the default.
func (s *Service) AddApplication(app *rpc.Application) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applications[app.Name] = app
	if s.defaultApplication == "" {
		s.defaultApplication = app.Name
	}
	return s
}

// FailContext makes the next n GetContext calls fail with codes.Unavailable.
func (s *Service) FailContext(n int) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contextFailures = n
	return s
}

// ContextCalls returns the number of GetContext calls received.
func (s *Service) ContextCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contextCalls
}

// ApplicationCalls returns the number of GetApplication calls received.
func (s *Service) ApplicationCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appCalls
}

func (s *Service) GetContext(context.Context, *rpc.Empty) (*rpc.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contextCalls++
	if s.contextFailures > 0 {
		s.contextFailures--
		return nil, status.Error(codes.Unavailable, "configuration service is starting")
	}
	return s.context, nil
}

func (s *Service) GetApplication(_ context.Context, req *rpc.ApplicationRequest) (*rpc.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appCalls++
	name := req.GetName()
	if name == "" {
		name = s.defaultApplication
	}

	app, ok := s.applications[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "application %q not found", name)
	}
	return app, nil
}

// Server serves a TFAAuth0ServiceServer over an in-memory listener.
type Server struct {
	lis *bufconn.Listener
	srv *grpc.Server
}

// NewServer starts serving svc. Call Close when done.
func NewServer(svc rpc.TFAAuth0ServiceServer) *Server {
	s := &Server{
		lis: bufconn.Listen(bufSize),
		srv: grpc.NewServer(),
	}
	rpc.RegisterTFAAuth0ServiceServer(s.srv, svc)

	go func() {
		_ = s.srv.Serve(s.lis)
	}()

	return s
}

// DialOption routes connections for [Target] to the in-memory listener.
func (s *Server) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return s.lis.DialContext(ctx)
	})
}

// Dial opens a client connection to the server.
func (s *Server) Dial() (*grpc.ClientConn, error) {
	return grpc.NewClient(Target,
		s.DialOption(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
}

// Close stops the server immediately.
func (s *Server) Close() {
	s.srv.Stop()
}
