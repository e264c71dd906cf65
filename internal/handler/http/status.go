package http

import "net/http"

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.StatusService.Status(r.Context()), http.StatusOK)
}
