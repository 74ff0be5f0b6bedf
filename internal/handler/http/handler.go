package http

import (
	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/models"
)

type Handler struct {
	props   *models.AuthProperties
	version string

	logger *logger.Logger
}

func NewHandler(props *models.AuthProperties, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		props:   props,
		version: version,
		logger:  logger,
	}
}
