package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/models"
)

// Clock is the time source of the health check.
type Clock func() (time.Time, error)

// SystemClock reads the wall clock. It never fails.
func SystemClock() (time.Time, error) {
	return time.Now(), nil
}

type healthService struct {
	clock Clock

	logger *logger.Logger
}

func NewHealthService(clock Clock, logger *logger.Logger) HealthService {
	if clock == nil {
		clock = SystemClock
	}

	return &healthService{
		clock:  clock,
		logger: logger,
	}
}

func (s *healthService) Check(ctx context.Context) (models.HealthRecord, error) {
	now, err := s.clock()
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("%w: %w", ErrTimeSourceUnavailable, err)
	}
	if now.IsZero() {
		return models.HealthRecord{}, fmt.Errorf("%w: zero time", ErrTimeSourceUnavailable)
	}

	return models.HealthRecord{
		Status:    models.HealthStatusOK,
		Timestamp: now.UTC().Format(models.TimestampLayout),
		Version:   APIVersion,
		Service:   ServiceName,
	}, nil
}
