package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-foodie/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by a session token.
type TokenClaims struct {
	Role    models.Role `json:"role"`
	EmailID string      `json:"emailId"`
	jwt.RegisteredClaims
}

// GenerateJWTToken creates a signed HMAC-SHA256 token for emailID with role.
// The subject claim is the email ID. All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("devserver", "a@b.co", models.RoleAdmin, time.Hour, "secret")
func GenerateJWTToken(issuer, emailID string, role models.Role, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || emailID == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &TokenClaims{
		Role:    role,
		EmailID: emailID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   emailID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString and returns its claims.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (TokenClaims, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return TokenClaims{}, errors.New("empty subject error")
	}

	return claims, nil
}

// ParseTokenClaims reads the claims of tokenString without verifying the
// signature. The client cannot verify tokens; it only reads the expiry.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	var claims TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return TokenClaims{}, fmt.Errorf("error parsing token claims: %w", err)
	}
	return claims, nil
}

// TokenExpiry returns the exp claim of tokenString, or the zero time when the
// token has none.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
