package adapter

import "errors"

var (
	// ErrApplicationNotFound is returned when the service knows no
	// application with the requested name.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrServiceUnavailable is returned when the service cannot be reached or
	// did not answer in time.
	ErrServiceUnavailable = errors.New("configuration service unavailable")
	// ErrBadRequest is returned when the service rejects the request.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError is returned when the service fails to serve a
	// well-formed request.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNoServiceAddress is returned by [NewConfigAdapter] when neither a
	// gRPC nor an HTTP address is configured.
	ErrNoServiceAddress = errors.New("no configuration service address")
)
