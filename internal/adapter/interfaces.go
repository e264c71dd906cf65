// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the fluxrouter backend API.
//
// The primary abstraction is [BackendAdapter], which decouples callers such
// as the container health probe from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPBackendAdapter]).
//
// Error responses are decoded from the API's uniform error body and mapped
// by mapHTTPError onto the sentinel values in errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404) or [errors.As] with [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/fluxrouter-backend/models"
)

// BackendAdapter reads the public endpoints of a running backend.
type BackendAdapter interface {
	// Health calls GET /api/health. A 500 health failure is returned as an
	// error wrapping [ErrUnhealthy].
	Health(ctx context.Context) (models.HealthRecord, error)

	// Info calls GET /api/info.
	Info(ctx context.Context) (models.InfoRecord, error)

	// Status calls GET /api/status.
	Status(ctx context.Context) (models.StatusRecord, error)
}
