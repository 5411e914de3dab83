// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest carries the credentials posted to the login endpoint.
type LoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

// LoginResponse is the backend answer to a successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	Role    Role   `json:"role"`
	EmailID string `json:"emailId"`
}

// StoredSession is the persisted form of an authenticated session. It is
// written after login so the next client start can skip the login screen.
type StoredSession struct {
	Token     string
	Role      Role
	EmailID   string
	ExpiresAt time.Time
	CreatedAt time.Time
}
