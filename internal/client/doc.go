// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, starts the background workers and runs
// the terminal UI in a single process lifecycle.
package client
