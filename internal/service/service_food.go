// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/models"
)

const flagTrue = "true"

type foodService struct {
	adapter adapter.ServerAdapter
	session *session.Session
	logger  *logger.Logger
}

func NewFoodService(serverAdapter adapter.ServerAdapter, sess *session.Session, logger *logger.Logger) FoodService {
	return &foodService{adapter: serverAdapter, session: sess, logger: logger}
}

func (f *foodService) List(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	foods, err := f.adapter.ListFoods(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", mapAdapterError(err))
	}
	return foods, nil
}

func (f *foodService) RequestDelete(itemName string) {
	f.session.SetFlag(session.FlagDelete, flagTrue)
	f.session.SetFlag(session.FlagItemName, itemName)
}

func (f *foodService) PendingDelete() (string, bool) {
	if f.session.Role() != models.RoleAdmin || f.session.Token() == "" {
		return "", false
	}
	if f.session.Flag(session.FlagDelete) != flagTrue {
		return "", false
	}

	itemName := f.session.Flag(session.FlagItemName)
	if itemName == "" {
		return "", false
	}
	return itemName, true
}

func (f *foodService) CancelDelete() {
	f.session.ClearFlags(session.FlagDelete, session.FlagItemName)
}

func (f *foodService) Delete(ctx context.Context) error {
	itemName, ok := f.PendingDelete()
	token := f.session.Token()
	f.CancelDelete()

	if !ok {
		if token == "" {
			f.logger.Warn().Msg("delete food without a session token")
			return ErrNoSessionToken
		}
		return ErrNoPendingDelete
	}

	if err := f.adapter.DeleteFood(ctx, itemName, token); err != nil {
		err = mapAdapterError(err)
		f.logger.Err(err).Str("food", itemName).Msg("delete food failed")
		return fmt.Errorf("delete food: %w", err)
	}

	f.logger.Info().Str("food", itemName).Msg("food deleted")
	return nil
}
