// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.ListRestaurants(r.Context()), http.StatusOK)
}

// currentRestaurant returns the restaurant owned by the token's admin.
func (h *Handler) currentRestaurant(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoClaimsInContext)
		return
	}

	restaurant, err := h.backend.RestaurantOf(r.Context(), claims.EmailID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.backend.CreateRestaurant(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.backend.ListFoods(r.Context(), pathParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if foods == nil {
		foods = []models.FoodItem{}
	}
	utils.WriteJSON(w, foods, http.StatusOK)
}
