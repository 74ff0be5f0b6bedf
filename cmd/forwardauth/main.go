package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/forward-auth-config/internal/adapter"
	"github.com/MKhiriev/forward-auth-config/internal/bootstrap"
	"github.com/MKhiriev/forward-auth-config/internal/config"
	httpHandler "github.com/MKhiriev/forward-auth-config/internal/handler/http"
	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/internal/server"
	"github.com/MKhiriev/forward-auth-config/internal/validators"
	"github.com/MKhiriev/forward-auth-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("forwardauth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	configAdapter, err := adapter.NewConfigAdapter(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating configuration service adapter")
	}
	defer configAdapter.Close()

	ctx := context.Background()
	props, err := bootstrap.Fetch(ctx, configAdapter, bootstrap.NewPolicy(cfg.Retry), log)
	if err != nil {
		// deferred Close does not run after Fatal
		_ = configAdapter.Close()
		log.Fatal().Err(err).Msg("error fetching configuration")
	}
	if err = validators.NewAuthPropertiesValidator().Validate(ctx, props); err != nil {
		_ = configAdapter.Close()
		log.Fatal().Err(err).Stringer("properties", props).Msg("invalid configuration received")
	}
	log.Info().Stringer("properties", props).Msg("configuration loaded")

	if cfg.Server.HTTPAddress == "" {
		log.Info().Msg("no server address configured, diagnostic surface disabled")
		return
	}

	handler := httpHandler.NewHandler(props, buildInfo.VersionOr(cfg.App.Version), log)
	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		_ = configAdapter.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
