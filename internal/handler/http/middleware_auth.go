// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
)

// auth is an HTTP middleware that enforces JWT bearer authentication.
//
// It extracts the token from the "Authorization" header, verifies signature,
// issuer and expiry, and stores the claims in the request context under
// [utils.ClaimsCtxKey]. Any failure is answered with 401 and the
// [app.MsgTokenIsInvalid] envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenIsInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsInvalid, http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.signKey, h.tokens.issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClaimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole rejects authenticated requests whose token role differs from
// role with 403. It must run after auth.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	message := app.MsgNotACustomer
	if role == models.RoleAdmin {
		message = app.MsgNotAnAdmin
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrNoClaimsInContext)
				return
			}

			if claims.Role != role {
				logger.FromRequest(r).Warn().
					Str("email_id", claims.EmailID).
					Str("role", claims.Role.String()).
					Str("required_role", role.String()).
					Msg("role is not allowed")
				utils.WriteError(w, message, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
