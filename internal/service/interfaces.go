// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's business operations on top of the
// backend adapter, the local session store and the in-memory session.
//
// Services validate payloads before they are sent, translate transport
// errors into the business errors of errors.go and keep the session in sync
// with the persisted copy. They never talk to the user; the terminal UI maps
// their errors to notices.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-foodie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages the signed-in session.
type AuthService interface {
	// Login exchanges credentials for a token, populates the session and
	// persists it. Returns the signed-in role.
	Login(ctx context.Context, emailID, password string) (models.Role, error)

	// Logout clears the session in memory and on disk.
	Logout(ctx context.Context) error

	// RestoreSession loads a persisted, unexpired session into memory.
	// It reports whether a session was restored.
	RestoreSession(ctx context.Context) (bool, error)

	// ClearExpired drops the session if its token expired at now. It reports
	// whether a session was dropped.
	ClearExpired(ctx context.Context, now time.Time) (bool, error)
}

// RestaurantService is the restaurant directory.
type RestaurantService interface {
	List(ctx context.Context) ([]models.Restaurant, error)

	// Search lists restaurants whose name starts with prefix, ignoring case.
	Search(ctx context.Context, prefix string) ([]models.Restaurant, error)

	// Current returns the restaurant of the signed-in admin.
	Current(ctx context.Context) (models.Restaurant, error)

	// Create validates and registers a restaurant.
	Create(ctx context.Context, req models.RegistrationRequest) error
}

// CustomerService handles customer accounts.
type CustomerService interface {
	// Register validates and registers a customer.
	Register(ctx context.Context, req models.RegistrationRequest) error

	// AddToFavorites adds a food item to the signed-in customer's favorites.
	AddToFavorites(ctx context.Context, foodName string) error
}

// FoodService handles restaurant menus and the two-step food deletion.
type FoodService interface {
	List(ctx context.Context, restaurantID string) ([]models.FoodItem, error)

	// RequestDelete records itemName as awaiting deletion.
	RequestDelete(itemName string)

	// PendingDelete returns the item awaiting deletion. ok is true only for a
	// signed-in admin with a recorded item.
	PendingDelete() (itemName string, ok bool)

	// CancelDelete forgets the item awaiting deletion.
	CancelDelete()

	// Delete deletes the item awaiting deletion. The pending state is
	// cleared whether or not the backend call succeeds.
	Delete(ctx context.Context) error
}
