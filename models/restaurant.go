// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Restaurant is the directory entry returned by the backend. FoodList is
// populated only by the endpoints that return a restaurant together with its
// menu.
type Restaurant struct {
	// Name is the display name and also the key used to fetch the menu.
	Name string `json:"name"`

	// EmailID is the contact email the restaurant was registered with.
	EmailID string `json:"emailId,omitempty"`

	// Address is the free-form street address.
	Address string `json:"address"`

	// PhoneNumber is the 10-digit contact number.
	PhoneNumber string `json:"phNo,omitempty"`

	// FoodList is the restaurant menu, if the endpoint embeds it.
	FoodList []FoodItem `json:"foodList"`
}
