// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/tui"
	"github.com/MKhiriev/go-foodie/internal/workers"
)

var ErrMissingDependency = errors.New("client: missing dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the session expiry job to ui and prepares the worker set.
func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil || services.SessionExpiryJob == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	job := services.SessionExpiryJob
	job.SetInterval(cfg.SessionCheckInterval)
	job.OnExpired(ui.SessionExpired)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(job),
		logger:   logger,
	}, nil
}

// Run restores a persisted session, starts the workers and blocks in the UI.
// Quitting with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	restored, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err != nil:
		a.logger.Warn().Err(err).Msg("restore session failed, starting logged out")
	case restored:
		a.logger.Info().Msg("session restored")
	default:
		a.logger.Debug().Msg("no stored session")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
