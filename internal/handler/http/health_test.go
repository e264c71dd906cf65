package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/internal/mock"
	"github.com/MKhiriev/fluxrouter-backend/internal/service"
	"github.com/MKhiriev/fluxrouter-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newHandlerWithMocks builds a Handler backed by gomock services and a
// logger writing to buf.
func newHandlerWithMocks(t *testing.T, buf *bytes.Buffer) (
	*Handler,
	*mock.MockHealthService,
	*mock.MockInfoService,
	*mock.MockStatusService,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	health := mock.NewMockHealthService(ctrl)
	info := mock.NewMockInfoService(ctrl)
	status := mock.NewMockStatusService(ctrl)

	h := NewHandler(&service.Services{
		HealthService: health,
		InfoService:   info,
		StatusService: status,
	}, logger.New(buf, "test"))

	return h, health, info, status
}

func TestHealth_Success(t *testing.T) {
	var buf bytes.Buffer
	h, health, _, _ := newHandlerWithMocks(t, &buf)

	record := models.HealthRecord{
		Status:    "ok",
		Timestamp: "2026-10-18T12:00:00.000000Z",
		Version:   "2.0.0",
		Service:   "fluxrouter-backend",
	}
	health.EXPECT().Check(gomock.Any()).Return(record, nil)

	rec := serve(h.Init(), http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"status": "ok",
		"timestamp": "2026-10-18T12:00:00.000000Z",
		"version": "2.0.0",
		"service": "fluxrouter-backend"
	}`, rec.Body.String())
	assert.Contains(t, buf.String(), "Health check requested - status: ok")
}

func TestHealth_Failure(t *testing.T) {
	var buf bytes.Buffer
	h, health, _, _ := newHandlerWithMocks(t, &buf)

	health.EXPECT().Check(gomock.Any()).
		Return(models.HealthRecord{}, errors.Join(service.ErrTimeSourceUnavailable, errors.New("no clock")))

	rec := serve(h.Init(), http.MethodGet, "/api/health")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"error","message":"Health check failed"}`, rec.Body.String())
	assertSecurityHeaders(t, rec.Header())

	logs := buf.String()
	assert.Contains(t, logs, `"level":"error"`)
	assert.Contains(t, logs, "Health check failed")
	assert.Contains(t, logs, "no clock")
}

func TestHealth_DirectCallWithoutMiddleware(t *testing.T) {
	var buf bytes.Buffer
	h, health, _, _ := newHandlerWithMocks(t, &buf)

	health.EXPECT().Check(gomock.Any()).Return(models.HealthRecord{Status: "ok"}, nil)

	rec := httptest.NewRecorder()
	h.health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInfo_UsesInfoService(t *testing.T) {
	var buf bytes.Buffer
	h, _, info, _ := newHandlerWithMocks(t, &buf)

	info.EXPECT().Info(gomock.Any()).Return(models.InfoRecord{
		Name:      "name",
		Endpoints: []string{"/x"},
	})

	rec := serve(h.Init(), http.MethodGet, "/api/info")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"name","version":"","description":"","endpoints":["/x"]}`, rec.Body.String())
}

func TestStatus_UsesStatusService(t *testing.T) {
	var buf bytes.Buffer
	h, _, _, status := newHandlerWithMocks(t, &buf)

	status.EXPECT().Status(gomock.Any()).Return(models.StatusRecord{
		Uptime:       "available",
		Environment:  "qa",
		DebugMode:    true,
		RequestCount: "not_tracked",
	})

	rec := serve(h.Init(), http.MethodGet, "/api/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uptime":"available","environment":"qa","debug_mode":true,"request_count":"not_tracked"}`, rec.Body.String())
}

func TestErrorPaths_DoNotCallServices(t *testing.T) {
	var buf bytes.Buffer
	// gomock fails the test on any unexpected call.
	h, _, _, _ := newHandlerWithMocks(t, &buf)
	router := h.Init()

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/unknown").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(router, http.MethodPost, "/api/health").Code)
}
