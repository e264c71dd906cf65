// Command healthcheck probes GET /api/health of a running backend and exits
// with status 0 when it reports "ok" and 1 otherwise. It is meant to be used
// as a container HEALTHCHECK.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/fluxrouter-backend/internal/adapter"
	"github.com/MKhiriev/fluxrouter-backend/internal/config"
	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("healthcheck")

	cfg, err := config.GetProbeConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting probe configs")
		return 1
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.BaseURL(), cfg.Timeout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating backend adapter")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	record, err := backend.Health(ctx)
	if err != nil {
		log.Error().Err(err).Str("url", cfg.BaseURL()).Msg("backend is unhealthy")
		return 1
	}

	log.Info().Str("timestamp", record.Timestamp).Str("version", record.Version).Msg("backend is healthy")
	return 0
}
