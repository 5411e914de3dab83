// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
)

// RegistrationForm is a [Form] over the registration fields with a role
// fixed by the screen that opened it.
type RegistrationForm struct {
	*Form
	role models.Role
}

// NewCustomerForm opens a registration form for a customer account.
func NewCustomerForm() *RegistrationForm {
	return newRegistrationForm(models.RoleCustomer)
}

// NewRestaurantForm opens a registration form for a restaurant. Restaurants
// are registered with the Admin role.
func NewRestaurantForm() *RegistrationForm {
	return newRegistrationForm(models.RoleAdmin)
}

func newRegistrationForm(role models.Role) *RegistrationForm {
	rules := validators.RegistrationRules()
	return &RegistrationForm{
		Form: New(
			Field{Name: validators.FieldName, Label: "Name", Rules: rules[validators.FieldName]},
			Field{Name: validators.FieldEmailID, Label: "Email", Rules: rules[validators.FieldEmailID]},
			Field{Name: validators.FieldPassword, Label: "Password", Secret: true, Rules: rules[validators.FieldPassword]},
			Field{Name: validators.FieldAddress, Label: "Address", Rules: rules[validators.FieldAddress]},
			Field{Name: validators.FieldPhone, Label: "Phone", Rules: rules[validators.FieldPhone]},
		),
		role: role,
	}
}

func (r *RegistrationForm) Role() models.Role {
	return r.role
}

// Request builds the payload sent to the backend from the current values.
func (r *RegistrationForm) Request() models.RegistrationRequest {
	values := r.Values()
	return models.RegistrationRequest{
		Name:        values[validators.FieldName],
		EmailID:     values[validators.FieldEmailID],
		Password:    values[validators.FieldPassword],
		Role:        r.role,
		Address:     values[validators.FieldAddress],
		PhoneNumber: values[validators.FieldPhone],
	}
}
