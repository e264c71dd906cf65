package service

import (
	"context"

	"github.com/MKhiriev/fluxrouter-backend/internal/config"
	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/models"
)

type statusService struct {
	environment string
	debug       bool

	logger *logger.Logger
}

// NewStatusService snapshots the environment name and debug flag from cfg.
func NewStatusService(cfg config.App, logger *logger.Logger) StatusService {
	return &statusService{
		environment: cfg.Environment,
		debug:       cfg.Debug,
		logger:      logger,
	}
}

// Status reports the startup configuration. Uptime and request counting
// are not implemented; those fields carry fixed placeholders.
func (s *statusService) Status(ctx context.Context) models.StatusRecord {
	return models.StatusRecord{
		Uptime:       models.UptimePlaceholder,
		Environment:  s.environment,
		DebugMode:    s.debug,
		RequestCount: models.RequestCountPlaceholder,
	}
}
