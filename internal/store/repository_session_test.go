// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSessionRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestSessionRepository_Save(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("REPLACE INTO sessions")).
		WithArgs(sessionRowID, "tok", "Customer", "c@d.co", int64(0), created.Unix()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), models.StoredSession{
		Token: "tok", Role: models.RoleCustomer, EmailID: "c@d.co", CreatedAt: created,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("REPLACE INTO sessions")).WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), models.StoredSession{Token: "tok"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestSessionRepository_Load(t *testing.T) {
	repo, mock := newMockRepo(t)
	expires := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	created := expires.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"token", "role", "email_id", "expires_at", "created_at"}).
		AddRow("tok", "Admin", "a@b.co", expires.Unix(), created.Unix())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT token, role, email_id, expires_at, created_at FROM sessions WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StoredSession{
		Token: "tok", Role: models.RoleAdmin, EmailID: "a@b.co", ExpiresAt: expires, CreatedAt: created,
	}, got)
}

func TestSessionRepository_Load_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Load_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("locked"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestSessionRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── SQLite round trip ───────────────────────────────────────────────────────

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "foodie.db")
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.SessionRepository
	ctx := context.Background()

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)

	first := models.StoredSession{Token: "one", Role: models.RoleCustomer, EmailID: "c@d.co", CreatedAt: time.Unix(100, 0).UTC()}
	second := models.StoredSession{Token: "two", Role: models.RoleAdmin, EmailID: "a@b.co", ExpiresAt: time.Unix(5000, 0).UTC(), CreatedAt: time.Unix(200, 0).UTC()}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	require.NoError(t, repo.Delete(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
