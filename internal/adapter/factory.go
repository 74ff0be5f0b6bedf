package adapter

import (
	"strings"

	"google.golang.org/grpc"

	"github.com/MKhiriev/forward-auth-config/internal/config"
	"github.com/MKhiriev/forward-auth-config/internal/logger"
)

// NewConfigAdapter returns the gRPC adapter when remoteCfg.GRPCAddress is set
// and the HTTP adapter otherwise. opts are passed to the gRPC client only.
func NewConfigAdapter(remoteCfg config.Remote, logger *logger.Logger, opts ...grpc.DialOption) (ConfigServiceAdapter, error) {
	if strings.TrimSpace(remoteCfg.GRPCAddress) != "" {
		logger.Info().Str("target", remoteCfg.GRPCAddress).Msg("using grpc configuration service adapter")
		return NewGRPCConfigAdapter(remoteCfg, logger, opts...)
	}

	if strings.TrimSpace(remoteCfg.HTTPAddress) != "" {
		logger.Info().Str("base_url", remoteCfg.HTTPAddress).Msg("using http configuration service adapter")
		return NewHTTPConfigAdapter(remoteCfg, logger)
	}

	return nil, ErrNoServiceAddress
}
