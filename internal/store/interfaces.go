// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client state in a local SQLite database.
//
// The only persisted state is the signed-in session, so a restarted client
// can skip the login screen until the token expires.
package store

import (
	"context"

	"github.com/MKhiriev/go-foodie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository stores at most one session.
type SessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session models.StoredSession) error
	// Load returns the stored session or [ErrSessionNotFound].
	Load(ctx context.Context) (models.StoredSession, error)
	// Delete removes the stored session. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}
