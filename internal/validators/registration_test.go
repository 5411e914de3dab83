// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() models.RegistrationRequest {
	return models.RegistrationRequest{
		Name:        "Jane Doe",
		EmailID:     "jane@example.com",
		Password:    "Abcdef1!",
		Role:        models.RoleCustomer,
		Address:     "1 Main St",
		PhoneNumber: "9876543210",
	}
}

func TestRegistrationValidator_Dispatch(t *testing.T) {
	v := NewRegistrationValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var req *models.RegistrationRequest
		require.ErrorIs(t, v.Validate(ctx, req), ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegistration()))
	})

	t.Run("pointer", func(t *testing.T) {
		req := validRegistration()
		require.NoError(t, v.Validate(ctx, &req))
	})
}

func TestRegistrationValidator_FieldErrors(t *testing.T) {
	v := NewRegistrationValidator()

	req := validRegistration()
	req.Name = " Jane"
	req.Password = "secret"
	req.PhoneNumber = "6876543210"
	req.Role = "Guest"

	err := v.Validate(context.Background(), req)
	require.Error(t, err)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))

	assertErrors(t, keys(KeyNoStartingSpace), fe.Field(FieldName))
	assertErrors(t, keys(KeyUppercase, KeyNumber, KeySpecialChar), fe.Field(FieldPassword))
	assertErrors(t, keys(KeyPattern, KeyFirstDigit), fe.Field(FieldPhone))
	assertErrors(t, keys(KeyInvalidRole), fe.Field(FieldRole))
	assert.Nil(t, fe.Field(FieldEmailID))
	assert.Nil(t, fe.Field(FieldAddress))

	assert.Equal(t,
		"validation failed: name: noStartingSpace; password: number,specialChar,uppercase; phNo: firstDigit,pattern; role: invalidRole",
		err.Error())
}

func TestRegistrationValidator_EmptyRequest(t *testing.T) {
	err := NewRegistrationValidator().Validate(context.Background(), models.RegistrationRequest{})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	for _, field := range []string{FieldName, FieldEmailID, FieldPassword, FieldAddress, FieldPhone} {
		assertErrors(t, keys(KeyRequired), fe.Field(field))
	}
	assertErrors(t, keys(KeyInvalidRole), fe.Field(FieldRole))
}

func TestRegistrationValidator_Scoped(t *testing.T) {
	v := NewRegistrationValidator()
	ctx := context.Background()

	req := validRegistration()
	req.EmailID = "1john@x.com"
	req.Name = "J4ne"

	t.Run("only email", func(t *testing.T) {
		var fe FieldErrors
		require.ErrorAs(t, v.Validate(ctx, req, FieldEmailID), &fe)
		assert.Len(t, fe, 1)
		assertErrors(t, keys(KeyInvalidEmail), fe.Field(FieldEmailID))
	})

	t.Run("only valid fields", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, req, FieldPassword, FieldAddress))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, req, "nickname"), ErrUnknownField)
	})
}
