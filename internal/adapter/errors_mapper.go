// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-foodie/models"
	"github.com/go-resty/resty/v2"
)

// HTTPError is a non-2xx backend response.
type HTTPError struct {
	StatusCode int
	// Message is the backend's error text: the "error" field of the JSON
	// envelope, else the raw body, else the status text.
	Message string
	// Location is set for redirects.
	Location string

	kind error
}

func (e *HTTPError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s (%d) to %s", e.kind, e.StatusCode, e.Location)
	}
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.kind
}

// NewHTTPError builds the error for a response with the given status code.
// location is kept only for redirect statuses.
func NewHTTPError(code int, message, location string) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: code,
		Message:    message,
		kind:       statusKind(code),
	}
	if code >= http.StatusMultipleChoices && code < http.StatusBadRequest {
		httpErr.Location = location
	}
	return httpErr
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return NewHTTPError(code, errorMessage(resp), resp.Header().Get("Location"))
}

func statusKind(code int) error {
	switch {
	case code >= http.StatusMultipleChoices && code < http.StatusBadRequest:
		return ErrRedirect
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusBadGateway:
		return ErrBadGateway
	case code >= http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	if body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
