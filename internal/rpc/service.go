// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified name of the configuration service.
const ServiceName = "tfa.auth0.TFAAuth0Service"

const (
	TFAAuth0Service_GetContext_FullMethodName     = "/" + ServiceName + "/GetContext"
	TFAAuth0Service_GetApplication_FullMethodName = "/" + ServiceName + "/GetApplication"
)

// TFAAuth0ServiceClient is the client API for the configuration service.
type TFAAuth0ServiceClient interface {
	// GetContext returns the tenant-wide configuration.
	GetContext(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Context, error)
	// GetApplication returns the named application, or the default one when
	// no name is given. Unknown names fail with codes.NotFound.
	GetApplication(ctx context.Context, in *ApplicationRequest, opts ...grpc.CallOption) (*Application, error)
}

type tFAAuth0ServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTFAAuth0ServiceClient binds the client API to cc. Calls are encoded with
// the JSON codec regardless of the connection's default call options.
func NewTFAAuth0ServiceClient(cc grpc.ClientConnInterface) TFAAuth0ServiceClient {
	return &tFAAuth0ServiceClient{cc}
}

func (c *tFAAuth0ServiceClient) GetContext(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Context, error) {
	out := new(Context)
	err := c.cc.Invoke(ctx, TFAAuth0Service_GetContext_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tFAAuth0ServiceClient) GetApplication(ctx context.Context, in *ApplicationRequest, opts ...grpc.CallOption) (*Application, error) {
	out := new(Application)
	err := c.cc.Invoke(ctx, TFAAuth0Service_GetApplication_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

// TFAAuth0ServiceServer is the server API for the configuration service.
type TFAAuth0ServiceServer interface {
	GetContext(context.Context, *Empty) (*Context, error)
	GetApplication(context.Context, *ApplicationRequest) (*Application, error)
}

// UnimplementedTFAAuth0ServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedTFAAuth0ServiceServer struct{}

func (UnimplementedTFAAuth0ServiceServer) GetContext(context.Context, *Empty) (*Context, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContext not implemented")
}

func (UnimplementedTFAAuth0ServiceServer) GetApplication(context.Context, *ApplicationRequest) (*Application, error) {
	return nil, status.Error(codes.Unimplemented, "method GetApplication not implemented")
}

// RegisterTFAAuth0ServiceServer registers srv on s.
func RegisterTFAAuth0ServiceServer(s grpc.ServiceRegistrar, srv TFAAuth0ServiceServer) {
	s.RegisterService(&TFAAuth0Service_ServiceDesc, srv)
}

func _TFAAuth0Service_GetContext_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TFAAuth0ServiceServer).GetContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TFAAuth0Service_GetContext_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TFAAuth0ServiceServer).GetContext(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _TFAAuth0Service_GetApplication_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TFAAuth0ServiceServer).GetApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TFAAuth0Service_GetApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TFAAuth0ServiceServer).GetApplication(ctx, req.(*ApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TFAAuth0Service_ServiceDesc is the grpc.ServiceDesc for the configuration
// service.
var TFAAuth0Service_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TFAAuth0ServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetContext",
			Handler:    _TFAAuth0Service_GetContext_Handler,
		},
		{
			MethodName: "GetApplication",
			Handler:    _TFAAuth0Service_GetApplication_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tfa/auth0/service.proto",
}
