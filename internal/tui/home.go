// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HomeModel lists restaurants and is the hub for every other page.
type HomeModel struct {
	ctx         context.Context
	restaurants service.RestaurantService
	auth        service.AuthService
	session     *session.Session

	items   []models.Restaurant
	idx     int
	loading bool
	spinner spinner.Model

	searching bool
	search    textinput.Model
	query     string
}

func NewHomeModel(ctx context.Context, restaurants service.RestaurantService, auth service.AuthService, sess *session.Session) *HomeModel {
	search := textinput.New()
	search.Placeholder = "restaurant name"
	search.Prompt = "/"
	search.Width = 40

	return &HomeModel{
		ctx:         ctx,
		restaurants: restaurants,
		auth:        auth,
		session:     sess,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:      search,
	}
}

// Init implements [tea.Model]. Loads the restaurant list.
func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

// Update implements [tea.Model]. Handled messages:
//   - [restaurantsLoadedMsg]: replaces the list; a redirect or failure is
//     reported in the snackbar.
//   - [logoutResultMsg]: reports the logout and reloads.
//   - / enters search mode; enter applies the prefix, esc leaves it.
//   - enter opens the selected restaurant's menu.
//   - r reloads, a adds a restaurant, s signs a customer up, l logs in or
//     out, m opens the signed-in admin's own restaurant, q quits.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restaurantsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.items = nil
			m.idx = 0
			if errors.Is(msg.err, service.ErrRedirected) {
				return m, notify(fmt.Sprintf(app.NoticeRestaurantsRedirected, service.RedirectLocation(msg.err)))
			}
			return m, notify(humanizeError(msg.err, app.NoticeRestaurantsLoadFailed))
		}

		m.items = msg.restaurants
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case logoutResultMsg:
		return m, tea.Batch(notify(app.NoticeLoggedOut), m.reload())
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *HomeModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		m.idx = 0
		return m, m.reload()
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *HomeModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		restaurant, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, navigate(pageFood, openRestaurantMsg{name: restaurant.Name})
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.reload):
		return m, m.reload()
	case key.Matches(msg, keys.addRest):
		return m, navigate(pageAddRestaurant, nil)
	case key.Matches(msg, keys.signUp):
		return m, navigate(pageRegister, nil)
	case key.Matches(msg, keys.login):
		if m.session.IsAuthenticated() {
			return m, m.cmdLogout()
		}
		return m, navigate(pageLogin, nil)
	case key.Matches(msg, keys.mine):
		if m.session.Role() != models.RoleAdmin {
			return m, notify(app.NoticeLoginRequired)
		}
		return m, navigate(pageFood, openRestaurantMsg{})
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// View implements [tea.Model]. Renders the signed-in account, the search
// prefix and the restaurant table.
func (m *HomeModel) View() string {
	var b strings.Builder

	if m.session.IsAuthenticated() {
		b.WriteString(fmt.Sprintf("Signed in: %s (%s)\n", m.session.EmailID(), m.session.Role()))
	} else {
		b.WriteString("Not signed in\n")
	}

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(fmt.Sprintf("Filter: %q\n", m.query))
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading restaurants...")
		return renderPage("RESTAURANTS", b.String(), m.hotKeys())
	}
	if len(m.items) == 0 {
		b.WriteString("No restaurants found")
		return renderPage("RESTAURANTS", b.String(), m.hotKeys())
	}

	nameColWidth := lipgloss.Width("Name")
	for _, item := range m.items {
		if w := lipgloss.Width(item.Name); w > nameColWidth {
			nameColWidth = w
		}
	}
	if nameColWidth > 30 {
		nameColWidth = 30
	}

	b.WriteString(fmt.Sprintf("%-5s │ %-*s │ %s\n", "#", nameColWidth, "Name", "Address"))
	b.WriteString(strings.Repeat("─", 5))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 30))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-5s │ %-*s │ %s\n",
			idCell, nameColWidth, fitText(item.Name, nameColWidth), fitText(valueOrDash(item.Address), 30)))
	}

	return renderPage("RESTAURANTS", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *HomeModel) hotKeys() string {
	if m.searching {
		return "enter: apply │ esc: cancel"
	}

	login := "l: login"
	if m.session.IsAuthenticated() {
		login = "l: logout"
	}
	hot := "enter: menu │ /: search │ r: reload │ a: add restaurant │ s: sign up │ " + login
	if m.session.Role() == models.RoleAdmin {
		hot += " │ m: my restaurant"
	}
	return hot + " │ v: version │ q: quit"
}

func (m *HomeModel) selected() (models.Restaurant, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Restaurant{}, false
	}
	return m.items[m.idx], true
}

func (m *HomeModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	restaurants := m.restaurants
	query := m.query

	return func() tea.Msg {
		items, err := restaurants.Search(ctx, query)
		return restaurantsLoadedMsg{restaurants: items, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutResultMsg{err: auth.Logout(ctx)}
	}
}
