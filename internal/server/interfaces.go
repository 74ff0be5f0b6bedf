package server

import "context"

// Server defines the lifecycle contract of the diagnostic surface.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Run serves requests until ctx is done or a stop signal arrives, then
	// shuts down gracefully.
	Run(ctx context.Context) error

	// Addr returns the bound listen address.
	Addr() string

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
