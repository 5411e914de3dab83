// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/logger"
)

// tokenSettings are the parameters of issued and accepted bearer tokens.
type tokenSettings struct {
	signKey  string
	issuer   string
	duration time.Duration
}

type Handler struct {
	backend Backend
	tokens  tokenSettings

	logger *logger.Logger
}

func NewHandler(backend Backend, cfg config.DevServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend: backend,
		tokens: tokenSettings{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			duration: cfg.TokenDuration,
		},
		logger: logger,
	}
}
