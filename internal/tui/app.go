// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/forms"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// abandoner is implemented by pages that drop their state when left.
type abandoner interface {
	Abandon()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages, asking the leave guard first when the
// active page owns a form
// 4) renders the confirm overlay and the snackbar line
// 5) hands request results to the page that started the request
// 6) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	guard     *forms.Guard
	confirmer *modalConfirmer
	confirm   *confirmRequest
	leaving   bool

	snackbar  snackbar
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. Leave and delete
// questions go to confirmer; a confirmer created by newModalConfirmer is
// answered through the overlay.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, confirmer forms.Confirmer) RootModel {
	r := RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentPage: startPage,
		guard:       forms.NewGuard(confirmer),
		buildInfo:   buildInfo,
	}
	if modal, ok := confirmer.(*modalConfirmer); ok {
		r.confirmer = modal
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if r.confirmer != nil {
		cmds = append(cmds, r.confirmer.wait())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.forceQuit) {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.confirm != nil {
			switch {
			case key.Matches(keyMsg, keys.yes):
				return r.answer(true)
			case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
				return r.answer(false)
			}
			return r, nil
		}

		switch {
		case key.Matches(keyMsg, keys.version) && r.currentPage == pageHome && !r.homeCapturesInput():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case confirmRequestMsg:
		r.confirm = &msg.request
		return r, nil
	case snackbarMsg:
		return r, r.snackbar.show(msg)
	case hideSnackbarMsg:
		r.snackbar.hide(msg)
		return r, nil
	case NavigateTo:
		return r.navigate(msg)
	case deactivateResultMsg:
		r.leaving = false
		if !msg.ok {
			return r, nil
		}
		return r.switchTo(msg.nav)
	case sessionExpiredMsg:
		next, cmd := r.switchTo(NavigateTo{Page: pageHome})
		return next, tea.Batch(notify(app.NoticeSessionExpired), cmd)
	case pageResult:
		if origin := msg.originPage(); origin != r.currentPage {
			if page, exists := r.pages[origin]; exists {
				updated, cmd := page.Update(msg)
				r.pages[origin] = updated
				return r, cmd
			}
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	body := renderPage("GO-FOODIE", "", "")
	if r.current != nil {
		body = r.current.View()
	}
	if r.confirm != nil {
		body += "\n\n" + renderConfirm(r.confirm.message)
	}

	return appStyle.Render(r.snackbar.render(body))
}

func (r RootModel) answer(ok bool) (tea.Model, tea.Cmd) {
	r.confirm.reply <- ok
	r.confirm = nil

	if r.confirmer == nil {
		return r, nil
	}
	return r, r.confirmer.wait()
}

// navigate switches pages right away unless the active page owns a form.
// Then the guard runs in a command, since it may block on a question.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	if _, exists := r.pages[nav.Page]; !exists {
		return r, nil
	}

	page, ok := r.current.(forms.Deactivatable)
	if !ok || nav.Page == r.currentPage {
		return r.switchTo(nav)
	}
	if r.leaving {
		return r, nil
	}

	r.leaving = true
	guard := r.guard
	state := page.FormState()
	return r, func() tea.Msg {
		return deactivateResultMsg{nav: nav, ok: guard.CanDeactivate(state)}
	}
}

func (r RootModel) switchTo(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if page, ok := r.current.(abandoner); ok && nav.Page != r.currentPage {
		page.Abandon()
	}

	r.showBuildInfo = false
	r.current = next
	r.currentPage = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) homeCapturesInput() bool {
	home, ok := r.current.(*HomeModel)
	return ok && home.searching
}
