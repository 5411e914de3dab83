// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

// LeaveConfirmMessage is the question asked before an edited, invalid form
// is left.
const LeaveConfirmMessage = "Changes you made may not be saved. Are you sure you want to leave?"

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a plain function to [Confirmer].
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// Deactivatable is implemented by screens that own a form.
type Deactivatable interface {
	FormState() State
}

// Guard decides whether a screen may be left.
type Guard struct {
	confirmer Confirmer
}

func NewGuard(confirmer Confirmer) *Guard {
	return &Guard{confirmer: confirmer}
}

// NeedsConfirmation reports whether leaving in state requires asking.
// Only a dirty and invalid form does; a dirty but valid one is left
// silently.
func NeedsConfirmation(state State) bool {
	return state.Dirty && !state.Valid
}

// CanDeactivate returns true when state needs no confirmation, otherwise the
// confirmer's answer to [LeaveConfirmMessage].
func (g *Guard) CanDeactivate(state State) bool {
	if !NeedsConfirmation(state) {
		return true
	}
	return g.confirmer.Confirm(LeaveConfirmMessage)
}
