package http

import (
	"testing"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, log)

	assert.Equal(t, log, h.logger)
}

func TestInit_RegistersPublicRoutes(t *testing.T) {
	router := NewHandler(&service.Services{}, logger.Nop()).Init()

	patterns := make(map[string][]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			patterns[route.Pattern] = append(patterns[route.Pattern], method)
		}
	}

	assert.Equal(t, map[string][]string{
		"/api/health": {"GET"},
		"/api/info":   {"GET"},
		"/api/status": {"GET"},
	}, patterns)
}
