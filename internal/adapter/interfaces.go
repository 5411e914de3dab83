// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between go-foodie and the
// food-ordering backend.
//
// [ServerAdapter] decouples the service layer from the protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to an [*HTTPError] that wraps
// one of the sentinel values in errors.go, so callers can use [errors.Is] for
// the status class and read the backend's message from the error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-foodie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the food-ordering backend.
// Token-requiring calls take the bearer token explicitly; the adapter keeps
// no session state.
type ServerAdapter interface {
	// Login exchanges credentials for a bearer token and the account role.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ListRestaurants returns every restaurant. A redirect response is
	// returned as [ErrRedirect] carrying the Location.
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)

	// GetCurrentRestaurant returns the restaurant owned by the token holder.
	GetCurrentRestaurant(ctx context.Context, token string) (models.Restaurant, error)

	// CreateRestaurant registers a restaurant account.
	CreateRestaurant(ctx context.Context, req models.RegistrationRequest) error

	// RegisterCustomer registers a customer account.
	RegisterCustomer(ctx context.Context, req models.RegistrationRequest) error

	// ListFoods returns the menu of the restaurant identified by
	// restaurantID, which is the restaurant name.
	ListFoods(ctx context.Context, restaurantID string) ([]models.FoodItem, error)

	// DeleteFood removes a food item from the token holder's restaurant.
	DeleteFood(ctx context.Context, itemName, token string) error

	// AddToFavorites adds a food item to the token holder's favorites.
	AddToFavorites(ctx context.Context, foodName, token string) error
}
