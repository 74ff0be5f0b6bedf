// Package http implements the diagnostic HTTP surface of the forward-auth
// bootstrap process.
//
// It exposes the configuration fetched at startup, the per-request
// application lookup and the build version. Request tracing and access
// logging are handled by middleware before requests reach the handlers.
package http
