// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSaveSessionQuery(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expires := created.Add(time.Hour)

	query, args, err := buildSaveSessionQuery(models.StoredSession{
		Token:     "tok",
		Role:      models.RoleAdmin,
		EmailID:   "a@b.co",
		ExpiresAt: expires,
		CreatedAt: created,
	})
	require.NoError(t, err)

	assert.Equal(t, "REPLACE INTO sessions (id,token,role,email_id,expires_at,created_at) VALUES (?,?,?,?,?,?)", query)
	assert.Equal(t, []any{sessionRowID, "tok", "Admin", "a@b.co", expires.Unix(), created.Unix()}, args)
}

func Test_buildSaveSessionQuery_NoExpiry(t *testing.T) {
	_, args, err := buildSaveSessionQuery(models.StoredSession{Token: "tok"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), args[4])
}

func Test_buildLoadSessionQuery(t *testing.T) {
	query, args, err := buildLoadSessionQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT token, role, email_id, expires_at, created_at FROM sessions WHERE id = ?", query)
	assert.Equal(t, []any{sessionRowID}, args)
}

func Test_buildDeleteSessionQuery(t *testing.T) {
	query, args, err := buildDeleteSessionQuery()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM sessions WHERE id = ?", query)
	assert.Equal(t, []any{sessionRowID}, args)
}
