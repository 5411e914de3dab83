// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/app"
)

// mapAdapterError translates the adapter's transport error into a business
// error. Duplicate-entity messages are recognized whatever the status code.
// Unrecognized errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	switch httpErr.Message {
	case app.MsgRestaurantAlreadyExists:
		return fmt.Errorf("%w: %w", ErrRestaurantAlreadyExists, err)
	case app.MsgCustomerAlreadyExists:
		return fmt.Errorf("%w: %w", ErrCustomerAlreadyExists, err)
	}

	switch {
	case errors.Is(err, adapter.ErrRedirect):
		return fmt.Errorf("%w: %w", ErrRedirected, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		if httpErr.Message == app.MsgInvalidCredentials {
			return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotAllowed, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}

// RedirectLocation returns the target of a redirect error, or "".
func RedirectLocation(err error) string {
	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Location
	}
	return ""
}
