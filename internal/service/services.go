// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/internal/store"
	"github.com/MKhiriev/go-foodie/internal/validators"
)

type ClientServices struct {
	AuthService       AuthService
	RestaurantService RestaurantService
	CustomerService   CustomerService
	FoodService       FoodService
	SessionExpiryJob  *SessionExpiryJob
}

func NewClientServices(
	serverAdapter adapter.ServerAdapter,
	storages *store.ClientStorages,
	sess *session.Session,
	validator validators.Validator,
	logger *logger.Logger,
) *ClientServices {
	authSvc := NewAuthService(serverAdapter, storages.SessionRepository, sess, logger)

	return &ClientServices{
		AuthService:       authSvc,
		RestaurantService: NewRestaurantService(serverAdapter, sess, validator, logger),
		CustomerService:   NewCustomerService(serverAdapter, sess, validator, logger),
		FoodService:       NewFoodService(serverAdapter, sess, logger),
		SessionExpiryJob:  NewSessionExpiryJob(authSvc, logger),
	}
}
