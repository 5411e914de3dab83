// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-foodie/models"
)

const (
	sessionsTable = "sessions"
	// sessionRowID pins the single session row.
	sessionRowID = 1
)

var sessionColumns = []string{"token", "role", "email_id", "expires_at", "created_at"}

// psql is the statement builder for SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSaveSessionQuery replaces the session row. Times are stored as unix
// seconds; a zero expiry is stored as 0.
func buildSaveSessionQuery(session models.StoredSession) (string, []any, error) {
	var expiresAt int64
	if !session.ExpiresAt.IsZero() {
		expiresAt = session.ExpiresAt.Unix()
	}

	return psql.
		Replace(sessionsTable).
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, session.Token, string(session.Role), session.EmailID, expiresAt, session.CreatedAt.Unix()).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return psql.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return psql.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
