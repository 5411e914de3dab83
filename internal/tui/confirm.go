// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmRequest struct {
	message string
	reply   chan<- bool
}

// modalConfirmer hands questions to the [RootModel], which renders them as
// an overlay and answers with y or n. Confirm blocks the calling command
// goroutine only; the render loop keeps running.
type modalConfirmer struct {
	requests chan confirmRequest
}

func newModalConfirmer() *modalConfirmer {
	return &modalConfirmer{requests: make(chan confirmRequest)}
}

func (c *modalConfirmer) Confirm(message string) bool {
	reply := make(chan bool, 1)
	c.requests <- confirmRequest{message: message, reply: reply}
	return <-reply
}

// wait delivers the next question to the update loop.
func (c *modalConfirmer) wait() tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg{request: <-c.requests}
	}
}

func renderConfirm(message string) string {
	return overlayBoxStyle.Render(message + "\n\n" + helpStyle.Render("y: yes │ n: no"))
}
