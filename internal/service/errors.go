// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrRestaurantAlreadyExists = errors.New("restaurant already exists")
	ErrCustomerAlreadyExists   = errors.New("customer already exists")

	// ErrInvalidRegistration wraps the field errors of a payload that failed
	// validation and was not sent.
	ErrInvalidRegistration = errors.New("invalid registration data")

	ErrEmptyCredentials = errors.New("email and password are required")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrTokenInvalid     = errors.New("token is expired or invalid")
	ErrNotAllowed       = errors.New("action not allowed for this account")
	ErrNotFound         = errors.New("not found")
	ErrServerFailure    = errors.New("server failure")

	// ErrNoSessionToken is returned by token-requiring operations when no one
	// is signed in. The operation is skipped.
	ErrNoSessionToken = errors.New("no session token")

	// ErrNoPendingDelete is returned by Delete when no item awaits deletion.
	ErrNoPendingDelete = errors.New("no food item awaiting deletion")

	// ErrRedirected is returned when the backend answers with a redirect.
	// The target is available from [RedirectLocation].
	ErrRedirected = errors.New("redirected")
)
