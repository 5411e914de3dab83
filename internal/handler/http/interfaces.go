// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-foodie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/backend_mock.go -package=mock

// Backend is the domain the handlers serve. *devserver.Backend implements it.
type Backend interface {
	Login(ctx context.Context, emailID, password string) (models.Role, error)
	ListRestaurants(ctx context.Context) []models.Restaurant
	RestaurantOf(ctx context.Context, emailID string) (models.Restaurant, error)
	CreateRestaurant(ctx context.Context, req models.RegistrationRequest) error
	RegisterCustomer(ctx context.Context, req models.RegistrationRequest) error
	ListFoods(ctx context.Context, name string) ([]models.FoodItem, error)
	DeleteFood(ctx context.Context, emailID, itemName string) error
	AddToFavorites(ctx context.Context, emailID, foodName string) error
}
