//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/fluxrouter-backend/models"
)

// HealthService builds the liveness record returned by GET /api/health.
type HealthService interface {
	// Check returns a fresh [models.HealthRecord] stamped with the current
	// UTC time, or an error if the time source is unavailable.
	Check(ctx context.Context) (models.HealthRecord, error)
}

// InfoService describes the API.
type InfoService interface {
	// Info returns the static [models.InfoRecord].
	Info(ctx context.Context) models.InfoRecord
}

// StatusService reports the process configuration.
type StatusService interface {
	// Status returns a [models.StatusRecord] built from the configuration
	// captured at startup.
	Status(ctx context.Context) models.StatusRecord
}
