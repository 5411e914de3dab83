// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
)

type restaurantService struct {
	adapter   adapter.ServerAdapter
	session   *session.Session
	validator validators.Validator
	logger    *logger.Logger
}

func NewRestaurantService(serverAdapter adapter.ServerAdapter, sess *session.Session, validator validators.Validator, logger *logger.Logger) RestaurantService {
	return &restaurantService{adapter: serverAdapter, session: sess, validator: validator, logger: logger}
}

func (r *restaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := r.adapter.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", mapAdapterError(err))
	}
	return restaurants, nil
}

func (r *restaurantService) Search(ctx context.Context, prefix string) ([]models.Restaurant, error) {
	restaurants, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByPrefix(restaurants, prefix), nil
}

// filterByPrefix keeps the restaurants whose name starts with prefix,
// ignoring case. An empty prefix keeps everything.
func filterByPrefix(restaurants []models.Restaurant, prefix string) []models.Restaurant {
	if prefix == "" {
		return restaurants
	}

	prefix = strings.ToLower(prefix)
	filtered := make([]models.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if strings.HasPrefix(strings.ToLower(restaurant.Name), prefix) {
			filtered = append(filtered, restaurant)
		}
	}
	return filtered
}

func (r *restaurantService) Current(ctx context.Context) (models.Restaurant, error) {
	token := r.session.Token()
	if token == "" {
		r.logger.Warn().Msg("current restaurant requested without a session token")
		return models.Restaurant{}, ErrNoSessionToken
	}

	restaurant, err := r.adapter.GetCurrentRestaurant(ctx, token)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("get current restaurant: %w", mapAdapterError(err))
	}
	return restaurant, nil
}

func (r *restaurantService) Create(ctx context.Context, req models.RegistrationRequest) error {
	req.Role = models.RoleAdmin
	if err := r.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}

	if err := r.adapter.CreateRestaurant(ctx, req); err != nil {
		err = mapAdapterError(err)
		r.logger.Err(err).Str("name", req.Name).Msg("create restaurant failed")
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}
