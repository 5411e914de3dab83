// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Save(ctx context.Context, session models.StoredSession) error {
	query, args, err := buildSaveSessionQuery(session)
	if err != nil {
		return fmt.Errorf("failed to build save session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("email_id", session.EmailID).
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (models.StoredSession, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("failed to build load session query: %w", err)
	}

	var (
		session   models.StoredSession
		role      string
		expiresAt int64
		createdAt int64
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.Token,
		&role,
		&session.EmailID,
		&expiresAt,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to load session")
		return models.StoredSession{}, fmt.Errorf("failed to load session: %w", err)
	}

	session.Role = models.Role(role)
	if expiresAt > 0 {
		session.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	}
	session.CreatedAt = time.Unix(createdAt, 0).UTC()

	return session, nil
}

func (s *sessionRepository) Delete(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
