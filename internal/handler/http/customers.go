// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
)

func (h *Handler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.backend.RegisterCustomer(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) addToFavorites(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoClaimsInContext)
		return
	}

	if err := h.backend.AddToFavorites(r.Context(), claims.EmailID, pathParam(r, "foodName")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
