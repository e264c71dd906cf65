package main

import (
	"fmt"

	"github.com/MKhiriev/fluxrouter-backend/internal/config"
	handler "github.com/MKhiriev/fluxrouter-backend/internal/handler/http"
	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/internal/server"
	"github.com/MKhiriev/fluxrouter-backend/internal/service"
	"github.com/MKhiriev/fluxrouter-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("fluxrouter-backend")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	logger.SetDebug(cfg.App.Debug)
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.IsProduction() && cfg.App.UsesDefaultSecretKey() {
		log.Warn().Msg("running in production with the default secret key; set SECRET_KEY")
	}

	services := service.NewServices(cfg.App, log)
	router := handler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Msgf("Starting %s on %s", service.APIName, cfg.Server.Address())
	log.Info().Msgf("Debug mode: %t", cfg.App.Debug)

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
