// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationRequest is the payload shared by restaurant and customer
// registration. The JSON names follow the backend contract.
type RegistrationRequest struct {
	// Name is the restaurant or customer display name.
	Name string `json:"name"`

	// EmailID is the login email.
	EmailID string `json:"emailId"`

	// Password is sent as typed; hashing is the backend's concern.
	Password string `json:"password"`

	// Role is fixed by the form: Admin for restaurants, Customer for customers.
	Role Role `json:"role"`

	// Address is the street address.
	Address string `json:"address"`

	// PhoneNumber is a 10-digit number starting with 7, 8 or 9.
	PhoneNumber string `json:"phNo"`
}
