// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
)

type customerService struct {
	adapter   adapter.ServerAdapter
	session   *session.Session
	validator validators.Validator
	logger    *logger.Logger
}

func NewCustomerService(serverAdapter adapter.ServerAdapter, sess *session.Session, validator validators.Validator, logger *logger.Logger) CustomerService {
	return &customerService{adapter: serverAdapter, session: sess, validator: validator, logger: logger}
}

func (c *customerService) Register(ctx context.Context, req models.RegistrationRequest) error {
	req.Role = models.RoleCustomer
	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}

	if err := c.adapter.RegisterCustomer(ctx, req); err != nil {
		err = mapAdapterError(err)
		c.logger.Err(err).Str("email", req.EmailID).Msg("register customer failed")
		return fmt.Errorf("register customer: %w", err)
	}
	return nil
}

func (c *customerService) AddToFavorites(ctx context.Context, foodName string) error {
	token := c.session.Token()
	if token == "" {
		c.logger.Warn().Str("food", foodName).Msg("add to favorites without a session token")
		return ErrNoSessionToken
	}

	if err := c.adapter.AddToFavorites(ctx, foodName, token); err != nil {
		err = mapAdapterError(err)
		c.logger.Err(err).Str("food", foodName).Msg("add to favorites failed")
		return fmt.Errorf("add to favorites: %w", err)
	}
	return nil
}
