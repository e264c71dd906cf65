package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/internal/service"
	"github.com/MKhiriev/fluxrouter-backend/internal/utils"
	"github.com/MKhiriev/fluxrouter-backend/models"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter] targeting address with the given per-request timeout.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPBackendAdapter(address string, timeout time.Duration, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	return &httpBackendAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) Health(ctx context.Context) (models.HealthRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(service.HealthPath)
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("health request: %w", err)
	}

	if resp.StatusCode() == http.StatusInternalServerError {
		var failure models.HealthFailure
		if jsonErr := json.Unmarshal(resp.Body(), &failure); jsonErr == nil && failure.Status == models.HealthStatusError {
			return models.HealthRecord{}, fmt.Errorf("%w: %s", ErrUnhealthy, failure.Message)
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthRecord{}, err
	}

	var record models.HealthRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.HealthRecord{}, fmt.Errorf("health decode: %w", err)
	}
	if record.Status != models.HealthStatusOK {
		return record, fmt.Errorf("%w: status %q", ErrUnhealthy, record.Status)
	}

	h.logger.Debug().Str("timestamp", record.Timestamp).Msg("backend is healthy")
	return record, nil
}

func (h *httpBackendAdapter) Info(ctx context.Context) (models.InfoRecord, error) {
	var record models.InfoRecord
	if err := h.getJSON(ctx, service.InfoPath, &record); err != nil {
		return models.InfoRecord{}, fmt.Errorf("info request: %w", err)
	}
	return record, nil
}

func (h *httpBackendAdapter) Status(ctx context.Context) (models.StatusRecord, error) {
	var record models.StatusRecord
	if err := h.getJSON(ctx, service.StatusPath, &record); err != nil {
		return models.StatusRecord{}, fmt.Errorf("status request: %w", err)
	}
	return record, nil
}

func (h *httpBackendAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}
