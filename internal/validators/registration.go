// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-foodie/models"
)

// Field names of the registration payload. They double as the keys of
// [FieldErrors] and as the field-scoping arguments of [Validator.Validate].
const (
	FieldName     = "name"
	FieldEmailID  = "emailId"
	FieldPassword = "password"
	FieldAddress  = "address"
	FieldPhone    = "phNo"
	FieldRole     = "role"
)

// KeyInvalidRole is reported for the role field when it is not a known role.
const KeyInvalidRole = "invalidRole"

// registrationFields is the field order used when no scope is given.
var registrationFields = []string{
	FieldName,
	FieldEmailID,
	FieldPassword,
	FieldAddress,
	FieldPhone,
	FieldRole,
}

// RegistrationRules returns the ordered rule list of every text field of the
// registration form. The role field has no text rules; it is fixed by the
// form and checked by [RegistrationValidator] only.
func RegistrationRules() map[string][]Func {
	return map[string][]Func{
		FieldName:     {Required, NoStartingSpace, AlphabetAndSpaceOnly},
		FieldEmailID:  {Required, Email, CustomEmail},
		FieldPassword: {Required, MinLength(PasswordMinLength), PasswordComplexity},
		FieldAddress:  {Required},
		FieldPhone:    {Required, Pattern(`[7-9]\d{9}`), PhoneNumber},
	}
}

// RegistrationValidator validates [models.RegistrationRequest] values with
// the rules of [RegistrationRules].
type RegistrationValidator struct {
	rules map[string][]Func
}

// NewRegistrationValidator constructs a RegistrationValidator and returns it
// as the Validator interface.
func NewRegistrationValidator() Validator {
	return &RegistrationValidator{rules: RegistrationRules()}
}

// Validate accepts a registration request by value or pointer. With no fields
// every registration field is checked. A failing request yields [FieldErrors];
// an unknown field name yields [ErrUnknownField].
func (v *RegistrationValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistration(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateRegistration(req models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	failed := make(FieldErrors)
	for _, field := range fields {
		var errs Errors
		switch field {
		case FieldName:
			errs = Run(req.Name, v.rules[FieldName]...)
		case FieldEmailID:
			errs = Run(req.EmailID, v.rules[FieldEmailID]...)
		case FieldPassword:
			errs = Run(req.Password, v.rules[FieldPassword]...)
		case FieldAddress:
			errs = Run(req.Address, v.rules[FieldAddress]...)
		case FieldPhone:
			errs = Run(req.PhoneNumber, v.rules[FieldPhone]...)
		case FieldRole:
			if !req.Role.IsValid() {
				errs = violation(KeyInvalidRole)
			}
		default:
			return ErrUnknownField
		}

		if !errs.Valid() {
			failed[field] = errs
		}
	}

	if len(failed) == 0 {
		return nil
	}
	return failed
}
