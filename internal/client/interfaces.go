// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App]. *tui.TUI implements it.
type UI interface {
	// Run blocks until the user leaves the interface.
	Run(ctx context.Context) error

	// SessionExpired tells a running interface that the session was cleared
	// in the background. It must be safe to call from any goroutine.
	SessionExpired()
}
