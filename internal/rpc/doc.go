// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc defines the boundary of the remote configuration service:
// the request and response messages, the JSON codec they travel with, and
// the client and server bindings of the tfa.auth0.TFAAuth0Service gRPC
// service.
//
// The bindings follow the layout protoc-gen-go-grpc produces so that the
// package can be swapped for generated code without touching callers.
package rpc
