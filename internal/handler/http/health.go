package http

import (
	"net/http"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/models"
)

const healthCheckFailedMessage = "Health check failed"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		log.Error().Err(err).Msg(healthCheckFailedMessage)
		h.writeJSON(w, r, models.HealthFailure{
			Status:  models.HealthStatusError,
			Message: healthCheckFailedMessage,
		}, http.StatusInternalServerError)
		return
	}

	log.Info().Msg("Health check requested - status: ok")
	h.writeJSON(w, r, record, http.StatusOK)
}
