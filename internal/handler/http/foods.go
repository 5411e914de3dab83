// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/utils"
)

// deleteFood removes an item from the menu of the token's restaurant.
func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoClaimsInContext)
		return
	}

	itemName := pathParam(r, "itemName")
	if err := h.backend.DeleteFood(r.Context(), claims.EmailID, itemName); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("email_id", claims.EmailID).Str("item_name", itemName).Msg("food item deleted")
	w.WriteHeader(http.StatusNoContent)
}
