// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/login", h.login)
		r.Get("/api/v1/restaurants", h.listRestaurants)
		r.Post("/api/v1/restaurants", h.createRestaurant)
		r.Get("/api/v1/restaurants/{name}/foods", h.listFoods)
		r.Post("/api/v1/customers", h.registerCustomer)
	})

	// restaurant admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireRole(models.RoleAdmin))
		r.Get("/api/v1/restaurants/current", h.currentRestaurant)
		r.Delete("/api/v1/foods/{itemName}", h.deleteFood)
	})

	// customer routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireRole(models.RoleCustomer))
		r.Post("/api/v1/customers/favorites/{foodName}", h.addToFavorites)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
