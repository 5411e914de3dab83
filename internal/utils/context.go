// Package utils provides helpers shared by the client and the development
// backend: context keys, JSON response writing, the HTTP client wrapper,
// request ID generation and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey stores the X-Request-ID of an inbound request.
var RequestIDCtxKey = contextKey("requestID")

// ClaimsCtxKey stores the verified [TokenClaims] of an authenticated request.
var ClaimsCtxKey = contextKey("claims")

// GetRequestIDFromContext returns the request ID stored under
// [RequestIDCtxKey].
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok
}

// GetClaimsFromContext returns the token claims stored under [ClaimsCtxKey].
func GetClaimsFromContext(ctx context.Context) (TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(TokenClaims)
	return claims, ok
}
