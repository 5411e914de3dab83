// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-foodie/internal/app"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError returns the server-unavailable notice for network failures
// and fallback for everything else.
func humanizeError(err error, fallback string) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.NoticeServerUnavailable
	}

	return fallback
}
