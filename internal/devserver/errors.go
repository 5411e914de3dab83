// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "errors"

var (
	ErrInvalidData             = errors.New("invalid data provided")
	ErrInvalidCredentials      = errors.New("invalid email/password")
	ErrRestaurantAlreadyExists = errors.New("restaurant already exists")
	ErrCustomerAlreadyExists   = errors.New("customer already exists")
	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrFoodNotFound            = errors.New("food item not found")
	ErrFoodAlreadyExists       = errors.New("food item already exists")
	ErrAccountIsNotARestaurant = errors.New("account does not own a restaurant")
	ErrAccountIsNotACustomer   = errors.New("account is not a customer")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
)
