// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SnackbarPosition places the notice line relative to the page.
type SnackbarPosition int

const (
	SnackbarTop SnackbarPosition = iota
	SnackbarBottom
)

const defaultSnackbarDuration = 3 * time.Second

type snackbarMsg struct {
	message  string
	duration time.Duration
	position SnackbarPosition
}

type hideSnackbarMsg struct {
	seq int
}

// Show returns a command that displays message for duration. A newer notice
// replaces the one on screen.
func Show(message string, duration time.Duration, position SnackbarPosition) tea.Cmd {
	return func() tea.Msg {
		return snackbarMsg{message: message, duration: duration, position: position}
	}
}

func notify(message string) tea.Cmd {
	if message == "" {
		return nil
	}
	return Show(message, defaultSnackbarDuration, SnackbarTop)
}

type snackbar struct {
	message  string
	position SnackbarPosition
	seq      int
}

func (s *snackbar) show(msg snackbarMsg) tea.Cmd {
	s.seq++
	s.message = msg.message
	s.position = msg.position

	duration := msg.duration
	if duration <= 0 {
		duration = defaultSnackbarDuration
	}
	seq := s.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return hideSnackbarMsg{seq: seq}
	})
}

// hide ignores timers of notices that were already replaced.
func (s *snackbar) hide(msg hideSnackbarMsg) {
	if msg.seq == s.seq {
		s.message = ""
	}
}

func (s snackbar) render(body string) string {
	if s.message == "" {
		return body
	}

	line := snackbarStyle.Render(s.message)
	if s.position == SnackbarBottom {
		return body + "\n\n" + line
	}
	return line + "\n\n" + body
}
