package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
	"github.com/MKhiriev/fluxrouter-backend/internal/service"
	"github.com/MKhiriev/fluxrouter-backend/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrTimeSourceUnavailable: http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// httpErrorFrom returns err itself when it is an [HTTPError], otherwise the
// HTTP error mapped from it.
func httpErrorFrom(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewHTTPError(statusFromError(err))
}

// writeError renders err as an ErrorRecord with the matching status code.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := httpErrorFrom(err)
	if _, writeErr := utils.WriteJSON(w, httpErr.Record(), httpErr.Code); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}

// writeJSON renders data with statusCode, falling back to a 500
// ErrorRecord if data cannot be encoded.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("Internal server error")
		h.writeError(w, r, err)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrNotFound)
}
