// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Status class sentinels wrapped by [HTTPError].
var (
	ErrRedirect            = errors.New("redirected")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrInvalidAddress is returned by [NewHTTPServerAdapter] for an unusable
// backend address.
var ErrInvalidAddress = errors.New("invalid adapter http address")
