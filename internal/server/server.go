package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/forward-auth-config/internal/config"
	"github.com/MKhiriev/forward-auth-config/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds cfg.HTTPAddress and returns a server for handler. The
// listener is open on return, so bind errors surface here.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handler, cfg.HTTPAddress, logger)
	if err != nil {
		return nil, err
	}

	return &server{httpServer: httpSrv, logger: logger}, nil
}

func (s *server) RunServer() {
	if err := s.Run(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// Run serves until ctx is done or a termination signal arrives, then shuts
// down gracefully. A Serve failure ends Run early with that error.
func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	served := make(chan error, 1)
	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.RunServer()
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
