package http

import (
	"github.com/MKhiriev/fluxrouter-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// Init builds the router. Middleware order, outermost first: security
// headers, trace ID, access log, panic recovery.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		withSecurityHeaders,
		h.withTraceID,
		h.withLogging,
		h.withRecover,
	)

	router.Get(service.HealthPath, h.health)
	router.Get(service.InfoPath, h.info)
	router.Get(service.StatusPath, h.status)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	return router
}
