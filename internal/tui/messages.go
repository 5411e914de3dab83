// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-foodie/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names.
const (
	pageHome          = "home"
	pageLogin         = "login"
	pageRegister      = "register"
	pageAddRestaurant = "addRestaurant"
	pageFood          = "food"
)

// NavigateTo asks the [RootModel] to switch pages. Payload, when set, is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

// openRestaurantMsg opens the food page. An empty name opens the signed-in
// admin's own restaurant.
type openRestaurantMsg struct {
	name string
}

type restaurantsLoadedMsg struct {
	restaurants []models.Restaurant
	err         error
}

type loginResultMsg struct {
	generation int
	emailID    string
	role       models.Role
	err        error
}

func (loginResultMsg) originPage() string { return pageLogin }

type logoutResultMsg struct {
	err error
}

// pageResult is the reply to a request a page started. [RootModel] hands it
// to that page even when the user has moved to another one.
type pageResult interface {
	originPage() string
}

// registrationResultMsg answers a submit of the form with the given
// generation. A form that was reset since then only reports the notice.
type registrationResultMsg struct {
	origin     string
	generation int
	err        error
}

func (m registrationResultMsg) originPage() string { return m.origin }

type foodsLoadedMsg struct {
	restaurant string
	foods      []models.FoodItem
	err        error
}

func (foodsLoadedMsg) originPage() string { return pageFood }

type currentRestaurantMsg struct {
	restaurant models.Restaurant
	err        error
}

func (currentRestaurantMsg) originPage() string { return pageFood }

type favoriteResultMsg struct {
	food string
	err  error
}

func (favoriteResultMsg) originPage() string { return pageFood }

type deleteFoodResultMsg struct {
	item      string
	cancelled bool
	err       error
}

func (deleteFoodResultMsg) originPage() string { return pageFood }

type copiedMsg struct {
	text string
	err  error
}

type sessionExpiredMsg struct{}

type confirmRequestMsg struct {
	request confirmRequest
}

type deactivateResultMsg struct {
	nav NavigateTo
	ok  bool
}
