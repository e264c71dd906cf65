package service

import (
	"github.com/MKhiriev/fluxrouter-backend/internal/config"
	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
)

// Identity of the backend, reported by the health and info endpoints.
const (
	APIName        = "FluxRouter Backend API"
	APIVersion     = "2.0.0"
	APIDescription = "Backend service with API endpoints"
	ServiceName    = "fluxrouter-backend"
)

// Paths of the public endpoints, in the order they are advertised by
// GET /api/info.
const (
	HealthPath = "/api/health"
	InfoPath   = "/api/info"
	StatusPath = "/api/status"
)

type Services struct {
	HealthService HealthService
	InfoService   InfoService
	StatusService StatusService
}

// NewServices builds all services from the application configuration.
// cfg is copied; later changes to the caller's value are not observed.
func NewServices(cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		HealthService: NewHealthService(SystemClock, logger),
		InfoService:   NewInfoService(logger),
		StatusService: NewStatusService(cfg, logger),
	}
}
