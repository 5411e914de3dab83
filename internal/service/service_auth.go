// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/internal/store"
	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
)

type authService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	session  *session.Session
	logger   *logger.Logger
	now      func() time.Time
}

func NewAuthService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, sess *session.Session, logger *logger.Logger) AuthService {
	return &authService{
		adapter:  serverAdapter,
		sessions: sessions,
		session:  sess,
		logger:   logger,
		now:      time.Now,
	}
}

func (a *authService) Login(ctx context.Context, emailID, password string) (models.Role, error) {
	emailID = strings.TrimSpace(emailID)
	if emailID == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{EmailID: emailID, Password: password})
	if err != nil {
		return "", fmt.Errorf("login: %w", mapAdapterError(err))
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w", ErrTokenInvalid)
	}

	role := resp.Role
	if !role.IsValid() {
		// older backends leave the role to the token claims
		if claims, claimsErr := utils.ParseTokenClaims(resp.Token); claimsErr == nil {
			role = claims.Role
		}
	}
	if resp.EmailID != "" {
		emailID = resp.EmailID
	}

	expiresAt, err := utils.TokenExpiry(resp.Token)
	if err != nil {
		a.logger.Warn().Err(err).Msg("token carries no readable expiry")
	}

	stored := models.StoredSession{
		Token:     resp.Token,
		Role:      role,
		EmailID:   emailID,
		ExpiresAt: expiresAt,
		CreatedAt: a.now(),
	}
	a.session.Populate(stored)

	if err = a.sessions.Save(ctx, stored); err != nil {
		a.logger.Err(err).Msg("failed to persist session")
	}

	return role, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.session.Clear()

	if err := a.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("delete stored session: %w", err)
	}
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) (bool, error) {
	stored, err := a.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load stored session: %w", err)
	}

	if stored.Token == "" {
		return false, nil
	}
	if !stored.ExpiresAt.IsZero() && !a.now().Before(stored.ExpiresAt) {
		a.logger.Info().Time("expired_at", stored.ExpiresAt).Msg("stored session expired")
		if err = a.sessions.Delete(ctx); err != nil {
			return false, fmt.Errorf("delete expired session: %w", err)
		}
		return false, nil
	}

	a.session.Populate(stored)
	return true, nil
}

func (a *authService) ClearExpired(ctx context.Context, now time.Time) (bool, error) {
	if !a.session.Expired(now) {
		return false, nil
	}

	a.logger.Info().Str("email", a.session.EmailID()).Msg("session expired")
	if err := a.Logout(ctx); err != nil {
		return true, err
	}
	return true, nil
}
