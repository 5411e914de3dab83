// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/forms"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// FoodModel shows one restaurant's menu. Customers add items to their
// favorites; the restaurant's admin deletes items after a confirmation.
type FoodModel struct {
	ctx         context.Context
	foods       service.FoodService
	customers   service.CustomerService
	restaurants service.RestaurantService
	session     *session.Session
	confirmer   forms.Confirmer

	restaurant string
	current    models.Restaurant
	items      []models.FoodItem
	idx        int
	loading    bool
	busy       bool
}

func NewFoodModel(
	ctx context.Context,
	foods service.FoodService,
	customers service.CustomerService,
	restaurants service.RestaurantService,
	sess *session.Session,
	confirmer forms.Confirmer,
) *FoodModel {
	return &FoodModel{
		ctx:         ctx,
		foods:       foods,
		customers:   customers,
		restaurants: restaurants,
		session:     sess,
		confirmer:   confirmer,
	}
}

// Init implements [tea.Model]. The menu is loaded on [openRestaurantMsg].
func (m *FoodModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - [openRestaurantMsg]: loads the menu, and for an admin the own
//     restaurant.
//   - [currentRestaurantMsg]: remembers the admin's restaurant.
//   - [foodsLoadedMsg]: replaces the menu.
//   - [favoriteResultMsg]: reports the favorites outcome.
//   - [deleteFoodResultMsg]: reloads the menu unless the user declined.
//   - [copiedMsg]: reports the clipboard outcome.
//   - f adds to favorites (Customer), d deletes (Admin of this restaurant),
//     c copies the item name, esc goes home.
func (m *FoodModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openRestaurantMsg:
		return m, m.open(msg.name)
	case currentRestaurantMsg:
		return m, m.handleCurrent(msg)
	case foodsLoadedMsg:
		if msg.restaurant != m.restaurant {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.items = nil
			return m, notify(humanizeError(msg.err, app.NoticeFoodsLoadFailed))
		}
		m.items = msg.foods
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case favoriteResultMsg:
		m.busy = false
		switch {
		case msg.err == nil:
			return m, notify(app.NoticeFavoriteAdded)
		case errors.Is(msg.err, service.ErrNoSessionToken):
			return m, nil
		}
		return m, notify(humanizeError(msg.err, app.NoticeFavoriteFailed))
	case deleteFoodResultMsg:
		m.busy = false
		if msg.cancelled {
			return m, nil
		}
		return m, m.reload()
	case copiedMsg:
		if msg.err != nil {
			return m, notify(app.NoticeCopyFailed)
		}
		return m, notify(fmt.Sprintf(app.NoticeCopied, msg.text))
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *FoodModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.esc):
		return m, navigate(pageHome, nil)
	case key.Matches(msg, keys.reload):
		return m, m.reload()
	case key.Matches(msg, keys.favorite):
		item, ok := m.selected()
		if !ok || m.busy || m.session.Role() != models.RoleCustomer {
			return m, nil
		}
		m.busy = true
		return m, m.cmdAddFavorite(item.ItemName)
	case key.Matches(msg, keys.delete):
		item, ok := m.selected()
		if !ok || m.busy || !m.canDelete() {
			return m, nil
		}
		m.busy = true
		m.foods.RequestDelete(item.ItemName)
		return m, m.cmdDelete()
	case key.Matches(msg, keys.copy):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(item.ItemName)
	}
	return m, nil
}

// View implements [tea.Model]. Renders the menu table and the actions the
// signed-in role may take.
func (m *FoodModel) View() string {
	title := "MENU"
	if m.restaurant != "" {
		title = "MENU: " + strings.ToUpper(m.restaurant)
	}

	var b strings.Builder
	if m.current.Name != "" && m.current.Name == m.restaurant {
		b.WriteString(fmt.Sprintf("Your restaurant │ %s │ %s\n\n", valueOrDash(m.current.Address), valueOrDash(m.current.PhoneNumber)))
	}

	switch {
	case m.loading:
		b.WriteString("Loading menu...")
		return renderPage(title, b.String(), m.hotKeys())
	case len(m.items) == 0:
		b.WriteString("No food items")
		return renderPage(title, b.String(), m.hotKeys())
	}

	nameColWidth := lipgloss.Width("Item")
	for _, item := range m.items {
		if w := lipgloss.Width(item.ItemName); w > nameColWidth {
			nameColWidth = w
		}
	}
	if nameColWidth > 30 {
		nameColWidth = 30
	}

	b.WriteString(fmt.Sprintf("%-5s │ %-*s │ %-12s │ %s\n", "#", nameColWidth, "Item", "Category", "Price"))
	b.WriteString(strings.Repeat("─", 5))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 12))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 10))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-5s │ %-*s │ %-12s │ %.2f\n",
			idCell, nameColWidth, fitText(item.ItemName, nameColWidth), fitText(valueOrDash(item.Category), 12), item.Price))
	}

	if item, ok := m.selected(); ok && item.Description != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(item.Description))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *FoodModel) hotKeys() string {
	hot := "esc: back │ r: reload │ c: copy name"
	switch {
	case m.session.Role() == models.RoleCustomer:
		hot += " │ f: add to view cart"
	case m.canDelete():
		hot += " │ d: delete"
	}
	return hot
}

// canDelete reports whether the signed-in admin owns the open restaurant.
func (m *FoodModel) canDelete() bool {
	return m.session.Role() == models.RoleAdmin &&
		m.current.Name != "" &&
		m.current.Name == m.restaurant
}

func (m *FoodModel) selected() (models.FoodItem, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.FoodItem{}, false
	}
	return m.items[m.idx], true
}

// open resets the page for restaurant name. An empty name waits for the
// admin's own restaurant before loading the menu.
func (m *FoodModel) open(name string) tea.Cmd {
	m.restaurant = name
	m.items = nil
	m.idx = 0
	m.busy = false
	m.loading = true

	var cmds []tea.Cmd
	if m.session.Role() == models.RoleAdmin {
		cmds = append(cmds, m.cmdLoadCurrent())
	} else {
		m.current = models.Restaurant{}
	}
	if name != "" {
		cmds = append(cmds, m.cmdLoadFoods(name))
	}
	return tea.Batch(cmds...)
}

func (m *FoodModel) handleCurrent(msg currentRestaurantMsg) tea.Cmd {
	if msg.err != nil {
		m.current = models.Restaurant{}
		if m.restaurant == "" {
			m.loading = false
			return notify(humanizeError(msg.err, app.NoticeFoodsLoadFailed))
		}
		return nil
	}

	m.current = msg.restaurant
	if m.restaurant == "" {
		m.restaurant = msg.restaurant.Name
		return m.cmdLoadFoods(m.restaurant)
	}
	return nil
}

func (m *FoodModel) reload() tea.Cmd {
	if m.restaurant == "" {
		return nil
	}
	m.loading = true
	return m.cmdLoadFoods(m.restaurant)
}

func (m *FoodModel) cmdLoadFoods(name string) tea.Cmd {
	ctx := m.ctx
	foods := m.foods

	return func() tea.Msg {
		items, err := foods.List(ctx, name)
		return foodsLoadedMsg{restaurant: name, foods: items, err: err}
	}
}

func (m *FoodModel) cmdLoadCurrent() tea.Cmd {
	ctx := m.ctx
	restaurants := m.restaurants

	return func() tea.Msg {
		restaurant, err := restaurants.Current(ctx)
		return currentRestaurantMsg{restaurant: restaurant, err: err}
	}
}

func (m *FoodModel) cmdAddFavorite(foodName string) tea.Cmd {
	ctx := m.ctx
	customers := m.customers

	return func() tea.Msg {
		return favoriteResultMsg{food: foodName, err: customers.AddToFavorites(ctx, foodName)}
	}
}

// cmdDelete asks for confirmation of the pending deletion and performs it.
// A declined question forgets the pending item.
func (m *FoodModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	foods := m.foods
	confirmer := m.confirmer

	return func() tea.Msg {
		item, ok := foods.PendingDelete()
		if !ok {
			foods.CancelDelete()
			return deleteFoodResultMsg{cancelled: true}
		}
		if !confirmer.Confirm(app.NoticeDeleteFoodConfirm) {
			foods.CancelDelete()
			return deleteFoodResultMsg{item: item, cancelled: true}
		}
		return deleteFoodResultMsg{item: item, err: foods.Delete(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}
