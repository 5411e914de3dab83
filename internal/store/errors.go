// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrSessionNotFound is returned when no session has been persisted.
	ErrSessionNotFound = errors.New("local session not found")
	// ErrNilDB is returned when a repository is built without a database.
	ErrNilDB = errors.New("db is nil")
)
