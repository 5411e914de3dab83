// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FoodItem is a single menu entry. ItemName is unique within a restaurant and
// is the key used by delete and add-to-favorites calls.
type FoodItem struct {
	ItemName    string  `json:"itemName"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image,omitempty"`
}
