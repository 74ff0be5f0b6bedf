// Package server runs the diagnostic HTTP surface.
//
// It owns the listener lifecycle: binding at construction, serving until a
// stop signal or context cancellation, and graceful shutdown.
package server
