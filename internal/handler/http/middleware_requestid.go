// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withRequestID reuses the caller's X-Request-ID or generates one, echoes it
// in the response and stores a child logger carrying it in the context.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := context.WithValue(r.Context(), utils.RequestIDCtxKey, requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(utils.RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
