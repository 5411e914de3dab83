// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/mock"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/internal/store"
	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockServerAdapter, *mock.MockSessionRepository, *session.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)
	sess := session.New()

	svc := NewAuthService(mockAdapter, mockRepo, sess, logger.Nop()).(*authService)
	return svc, mockAdapter, mockRepo, sess
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mockAdapter, mockRepo, sess := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken("issuer", "owner@pizza.io", models.RoleAdmin, time.Hour, "key")
	require.NoError(t, err)
	wantExpiry, err := utils.TokenExpiry(token)
	require.NoError(t, err)

	mockAdapter.EXPECT().
		Login(ctx, models.LoginRequest{EmailID: "owner@pizza.io", Password: "Secret1!"}).
		Return(models.LoginResponse{Token: token, Role: models.RoleAdmin, EmailID: "owner@pizza.io"}, nil)
	mockRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, stored models.StoredSession) error {
			assert.Equal(t, token, stored.Token)
			assert.Equal(t, models.RoleAdmin, stored.Role)
			assert.True(t, wantExpiry.Equal(stored.ExpiresAt))
			assert.False(t, stored.CreatedAt.IsZero())
			return nil
		},
	)

	role, err := svc.Login(ctx, " owner@pizza.io ", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
	assert.Equal(t, token, sess.Token())
	assert.Equal(t, "owner@pizza.io", sess.EmailID())
}

func TestAuthService_Login_RoleFromClaims(t *testing.T) {
	svc, mockAdapter, mockRepo, sess := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken("issuer", "jane@mail.com", models.RoleCustomer, time.Hour, "key")
	require.NoError(t, err)

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{Token: token}, nil)
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	role, err := svc.Login(ctx, "jane@mail.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, role)
	assert.Equal(t, models.RoleCustomer, sess.Role())
}

func TestAuthService_Login_SaveFailureKeepsSession(t *testing.T) {
	svc, mockAdapter, mockRepo, sess := newTestAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.LoginResponse{Token: "opaque", Role: models.RoleCustomer}, nil)
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Login(ctx, "jane@mail.com", "pw")
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
}

func TestAuthService_Login_Errors(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		svc, _, _, _ := newTestAuthSvc(t)
		_, err := svc.Login(context.Background(), "  ", "pw")
		assert.ErrorIs(t, err, ErrEmptyCredentials)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		svc, mockAdapter, _, sess := newTestAuthSvc(t)
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.LoginResponse{}, adapter.NewHTTPError(http.StatusUnauthorized, app.MsgInvalidCredentials, ""))

		_, err := svc.Login(context.Background(), "jane@mail.com", "bad")
		assert.ErrorIs(t, err, ErrWrongCredentials)
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("empty token", func(t *testing.T) {
		svc, mockAdapter, _, _ := newTestAuthSvc(t)
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, nil)

		_, err := svc.Login(context.Background(), "jane@mail.com", "pw")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, mockRepo, sess := newTestAuthSvc(t)
	sess.Populate(models.StoredSession{Token: "t", Role: models.RoleAdmin})
	sess.SetFlag(session.FlagDelete, "true")

	mockRepo.EXPECT().Delete(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Flag(session.FlagDelete))
}

func TestAuthService_RestoreSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nothing stored", func(t *testing.T) {
		svc, _, mockRepo, sess := newTestAuthSvc(t)
		mockRepo.EXPECT().Load(gomock.Any()).Return(models.StoredSession{}, store.ErrSessionNotFound)

		restored, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.False(t, restored)
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("valid session", func(t *testing.T) {
		svc, _, mockRepo, sess := newTestAuthSvc(t)
		svc.now = func() time.Time { return now }
		stored := models.StoredSession{Token: "t", Role: models.RoleCustomer, ExpiresAt: now.Add(time.Minute)}
		mockRepo.EXPECT().Load(gomock.Any()).Return(stored, nil)

		restored, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.True(t, restored)
		assert.Equal(t, "t", sess.Token())
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		svc, _, mockRepo, sess := newTestAuthSvc(t)
		svc.now = func() time.Time { return now }
		stored := models.StoredSession{Token: "t", ExpiresAt: now}
		gomock.InOrder(
			mockRepo.EXPECT().Load(gomock.Any()).Return(stored, nil),
			mockRepo.EXPECT().Delete(gomock.Any()).Return(nil),
		)

		restored, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.False(t, restored)
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("load failure", func(t *testing.T) {
		svc, _, mockRepo, _ := newTestAuthSvc(t)
		mockRepo.EXPECT().Load(gomock.Any()).Return(models.StoredSession{}, errors.New("locked"))

		_, err := svc.RestoreSession(context.Background())
		assert.Error(t, err)
	})
}

func TestAuthService_ClearExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("not expired", func(t *testing.T) {
		svc, _, _, sess := newTestAuthSvc(t)
		sess.Populate(models.StoredSession{Token: "t", ExpiresAt: now.Add(time.Second)})

		expired, err := svc.ClearExpired(context.Background(), now)
		require.NoError(t, err)
		assert.False(t, expired)
		assert.True(t, sess.IsAuthenticated())
	})

	t.Run("expired", func(t *testing.T) {
		svc, _, mockRepo, sess := newTestAuthSvc(t)
		sess.Populate(models.StoredSession{Token: "t", ExpiresAt: now})
		mockRepo.EXPECT().Delete(gomock.Any()).Return(nil)

		expired, err := svc.ClearExpired(context.Background(), now)
		require.NoError(t, err)
		assert.True(t, expired)
		assert.False(t, sess.IsAuthenticated())
	})
}
