package service

import (
	"context"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/models"
)

type infoService struct {
	logger *logger.Logger
}

func NewInfoService(logger *logger.Logger) InfoService {
	return &infoService{
		logger: logger,
	}
}

// Info returns a new record on every call so callers may not mutate a
// shared endpoints slice.
func (s *infoService) Info(ctx context.Context) models.InfoRecord {
	return models.InfoRecord{
		Name:        APIName,
		Version:     APIVersion,
		Description: APIDescription,
		Endpoints:   []string{HealthPath, InfoPath, StatusPath},
	}
}
