// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-foodie/internal/devserver"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	req.EmailID = strings.TrimSpace(req.EmailID)
	if req.EmailID == "" || req.Password == "" {
		h.writeError(w, r, fmt.Errorf("%w: empty credentials", devserver.ErrInvalidData))
		return
	}

	role, err := h.backend.Login(ctx, req.EmailID, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := utils.GenerateJWTToken(h.tokens.issuer, req.EmailID, role, h.tokens.duration, h.tokens.signKey)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("creation of token failed: %w", err))
		return
	}

	log.Debug().Str("email_id", req.EmailID).Str("role", role.String()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token, Role: role, EmailID: req.EmailID}, http.StatusOK)
}
