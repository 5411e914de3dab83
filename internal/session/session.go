// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the signed-in user's credentials and the transient
// flags that carry a pending action from one screen to the next.
//
// A single [Session] is created at startup and shared by the services and
// the terminal UI. It is safe for concurrent use.
package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-foodie/models"
)

// Transient flag names.
const (
	// FlagDelete is "true" while a food deletion awaits confirmation.
	FlagDelete = "delete"
	// FlagItemName holds the name of the food item to delete.
	FlagItemName = "itemName"
)

type Session struct {
	mu sync.RWMutex

	token     string
	role      models.Role
	emailID   string
	expiresAt time.Time

	flags map[string]string
}

func New() *Session {
	return &Session{flags: make(map[string]string)}
}

// Populate stores the credentials of a successful login.
func (s *Session) Populate(stored models.StoredSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = stored.Token
	s.role = stored.Role
	s.emailID = stored.EmailID
	s.expiresAt = stored.ExpiresAt
}

// Snapshot returns the credentials in their persisted form.
func (s *Session) Snapshot() models.StoredSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.StoredSession{
		Token:     s.token,
		Role:      s.role,
		EmailID:   s.emailID,
		ExpiresAt: s.expiresAt,
	}
}

// Clear drops credentials and flags.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.role = ""
	s.emailID = ""
	s.expiresAt = time.Time{}
	s.flags = make(map[string]string)
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) EmailID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emailID
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Expired reports whether the token carries an expiry that is not after now.
// A token without expiry never expires; no token is not expired either.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || s.expiresAt.IsZero() {
		return false
	}
	return !now.Before(s.expiresAt)
}

func (s *Session) SetFlag(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[name] = value
}

// Flag returns the flag value, or "" when unset.
func (s *Session) Flag(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// ClearFlags removes the named flags. Without names every flag is removed.
func (s *Session) ClearFlags(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(names) == 0 {
		s.flags = make(map[string]string)
		return
	}
	for _, name := range names {
		delete(s.flags, name)
	}
}
