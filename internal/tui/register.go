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
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registrationSubmitFunc func(ctx context.Context, req models.RegistrationRequest) error

// registrationNotices are the snackbar texts of one registration screen.
type registrationNotices struct {
	added     string
	exists    string
	failed    string
	duplicate error
}

// fieldErrorTexts are the hints rendered under a failing field.
var fieldErrorTexts = map[string]string{
	validators.KeyRequired:             "This field is required",
	validators.KeyNoStartingSpace:      "Must not start with a space",
	validators.KeyAlphabetAndSpaceOnly: "Only letters and spaces are allowed",
	validators.KeyEmail:                "Not a valid email address",
	validators.KeyInvalidEmail:         "Email must start with a letter",
	validators.KeyFirstDigit:           "Must start with 7, 8 or 9",
	validators.KeyPattern:              "Must be 10 digits",
	validators.KeyMinLengthStock:       "Too short",
	validators.KeyNoSpaces:             "Must not contain spaces",
	validators.KeyMinLength:            "At least 6 characters",
	validators.KeyUppercase:            "Needs an uppercase letter",
	validators.KeyLowercase:            "Needs a lowercase letter",
	validators.KeyNumber:               "Needs a number",
	validators.KeySpecialChar:          "Needs a special character",
}

// RegistrationModel is the Bubble Tea model shared by the customer sign-up
// and the add-restaurant screens. Every edit is validated against the
// registration rules; a payload that fails them is never sent.
type RegistrationModel struct {
	ctx     context.Context
	page    string
	title   string
	form    *forms.RegistrationForm
	submit  registrationSubmitFunc
	notices registrationNotices

	inputs     []textinput.Model
	focus      int
	submitting bool
	generation int
	touched    map[string]bool
	showErrors bool
}

// NewRegisterModel opens the customer sign-up screen.
func NewRegisterModel(ctx context.Context, customers service.CustomerService) *RegistrationModel {
	return newRegistrationModel(ctx, pageRegister, "CUSTOMER SIGN UP", forms.NewCustomerForm(), customers.Register, registrationNotices{
		added:     app.NoticeCustomerAdded,
		exists:    app.NoticeCustomerExists,
		failed:    app.NoticeCustomerFailed,
		duplicate: service.ErrCustomerAlreadyExists,
	})
}

// NewAddRestaurantModel opens the restaurant registration screen.
func NewAddRestaurantModel(ctx context.Context, restaurants service.RestaurantService) *RegistrationModel {
	return newRegistrationModel(ctx, pageAddRestaurant, "ADD RESTAURANT", forms.NewRestaurantForm(), restaurants.Create, registrationNotices{
		added:     app.NoticeRestaurantAdded,
		exists:    app.NoticeRestaurantExists,
		failed:    app.NoticeRestaurantFailed,
		duplicate: service.ErrRestaurantAlreadyExists,
	})
}

func newRegistrationModel(ctx context.Context, page, title string, form *forms.RegistrationForm, submit registrationSubmitFunc, notices registrationNotices) *RegistrationModel {
	fields := form.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(field.Label)
		inputs[i].Width = 40
		if field.Secret {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Focus()

	return &RegistrationModel{
		ctx:     ctx,
		page:    page,
		title:   title,
		form:    form,
		submit:  submit,
		notices: notices,
		inputs:  inputs,
		touched: make(map[string]bool, len(fields)),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegistrationModel) Init() tea.Cmd {
	return textinput.Blink
}

// FormState implements [forms.Deactivatable].
func (m *RegistrationModel) FormState() forms.State {
	return m.form.State()
}

// Abandon closes the form and opens a fresh one for the next visit.
func (m *RegistrationModel) Abandon() {
	m.form.MarkAbandoned()
	m.resetForm()
}

// Update implements [tea.Model]. Handled messages:
//   - [registrationResultMsg]: clears submitting state; on success, resets
//     the form and navigates home; on failure, reports the notice. A result
//     for a form that was reset since the submit only reports the notice.
//   - esc: navigates home, subject to the leave guard.
//   - tab: moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter: sends the payload when every field is valid.
//
// All other key events are forwarded to the focused input widget and the
// resulting value is revalidated.
func (m *RegistrationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registrationResultMsg); ok {
		return m.handleResult(result)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageHome, nil)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if !m.form.Valid() {
				m.showErrors = true
				return m, nil
			}

			m.submitting = true
			return m, m.cmdSubmit(m.form.Request())
		}
	}

	field := m.form.Fields()[m.focus]
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if value := m.inputs[m.focus].Value(); value != before {
		_ = m.form.Set(field.Name, value)
		m.touched[field.Name] = true
	}
	return m, cmd
}

func (m *RegistrationModel) handleResult(result registrationResultMsg) (tea.Model, tea.Cmd) {
	if result.generation != m.generation {
		return m, notify(m.notice(result.err))
	}
	m.submitting = false

	switch {
	case result.err == nil:
		m.form.MarkSubmitted()
		m.resetForm()
		return m, tea.Batch(notify(m.notices.added), navigate(pageHome, nil))
	case errors.Is(result.err, service.ErrInvalidRegistration):
		m.showErrors = true
		return m, nil
	}
	return m, notify(m.notice(result.err))
}

func (m *RegistrationModel) notice(err error) string {
	switch {
	case err == nil:
		return m.notices.added
	case errors.Is(err, m.notices.duplicate):
		return m.notices.exists
	}
	return humanizeError(err, m.notices.failed)
}

// View implements [tea.Model]. Renders one row per field with the field's
// violations under it, and the submit control.
func (m *RegistrationModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")

	for i, field := range m.form.Fields() {
		b.WriteString(fmt.Sprintf("%-9s │ [", field.Label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")

		if !m.touched[field.Name] && !m.showErrors {
			continue
		}
		for _, k := range m.form.Errors(field.Name).Keys() {
			b.WriteString("          │   ")
			b.WriteString(errorStyle.Render(fieldErrorText(k)))
			b.WriteString("\n")
		}
	}

	switch {
	case m.submitting:
		b.WriteString(disabledStyle.Render("\n[Submit...]"))
	case !m.form.Valid():
		b.WriteString(disabledStyle.Render("\n[Submit]"))
	default:
		b.WriteString("\n[Submit]")
	}

	return renderPage(m.title, b.String(), "esc: back │ tab: next field │ enter: submit")
}

func fieldErrorText(k string) string {
	if text, ok := fieldErrorTexts[k]; ok {
		return text
	}
	return k
}

func (m *RegistrationModel) cmdSubmit(req models.RegistrationRequest) tea.Cmd {
	ctx := m.ctx
	submit := m.submit
	origin := m.page
	generation := m.generation

	return func() tea.Msg {
		return registrationResultMsg{origin: origin, generation: generation, err: submit(ctx, req)}
	}
}

func (m *RegistrationModel) resetForm() {
	m.generation++
	m.form.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
	m.touched = make(map[string]bool, len(m.inputs))
	m.showErrors = false
	m.submitting = false
}

func (m *RegistrationModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegistrationModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
