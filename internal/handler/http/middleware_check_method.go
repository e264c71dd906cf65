// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// methodNotAllowed returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi invokes it whenever a request path matches a registered route but the
// HTTP method is not handled. It responds with 405 and the uniform error
// body, and advertises the methods registered for the route in the Allow
// header.
//
// The lookup is performed by iterating over all routes registered on router
// and comparing each route's pattern against the raw request path
// ([http.Request.URL.Path]). Only exact pattern matches are considered;
// parameterised or wildcard segments are not expanded during this check.
func (h *Handler) methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); allowed != "" {
			w.Header().Set("Allow", allowed)
		}

		h.writeError(w, r, ErrMethodNotAllowed)
	}
}

// allowedMethods returns the comma-separated, sorted methods registered
// for path, or an empty string when no route pattern equals path.
func allowedMethods(router chi.Routes, path string) string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		return strings.Join(methods, ", ")
	}

	return ""
}
