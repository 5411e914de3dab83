// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware and request decoding.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoClaimsInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoClaimsInContext = errors.New("no token claims in request context")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
