// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body the backend sends with non-2xx statuses.
type ErrorResponse struct {
	// Error is the human-readable message, e.g. "Restaurant already exists".
	Error string `json:"error"`
}
