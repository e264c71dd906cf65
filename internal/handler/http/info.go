package http

import "net/http"

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.InfoService.Info(r.Context()), http.StatusOK)
}
