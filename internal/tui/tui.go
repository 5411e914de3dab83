// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client as a Bubble Tea terminal application.
//
// A [RootModel] routes between pages (restaurant list, login, customer
// sign-up, add restaurant, menu), asks the leave guard before a page with an
// edited form is left, and shows notices in a snackbar line. Pages call the
// service layer from commands, so the render loop never blocks on I/O.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	session   *session.Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, sess *session.Session, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || sess == nil {
		return nil, errors.New("tui: services and session are required")
	}
	return &TUI{services: services, session: sess, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled. Quitting with ctrl+c
// returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	confirmer := newModalConfirmer()
	root := NewRootModel(t.pages(ctx, confirmer), pageHome, t.buildInfo, confirmer)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.setProgram(program)
	defer t.setProgram(nil)

	t.logger.Info().Msg("tui started")
	finalModel, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Msg("tui stopped by context")
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// SessionExpired tells a running UI that the session was dropped. It is
// safe to call from any goroutine.
func (t *TUI) SessionExpired() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(sessionExpiredMsg{})
	}
}

func (t *TUI) setProgram(program *tea.Program) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = program
}

func (t *TUI) pages(ctx context.Context, confirmer *modalConfirmer) map[string]tea.Model {
	svcs := t.services
	return map[string]tea.Model{
		pageHome:          NewHomeModel(ctx, svcs.RestaurantService, svcs.AuthService, t.session),
		pageLogin:         NewLoginModel(ctx, svcs.AuthService),
		pageRegister:      NewRegisterModel(ctx, svcs.CustomerService),
		pageAddRestaurant: NewAddRestaurantModel(ctx, svcs.RestaurantService),
		pageFood:          NewFoodModel(ctx, svcs.FoodService, svcs.CustomerService, svcs.RestaurantService, t.session, confirmer),
	}
}
