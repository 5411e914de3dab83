// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16
	separator  = "$"
)

// ErrMalformedHash is returned when an encoded hash cannot be split into its
// salt and key parts.
var ErrMalformedHash = errors.New("malformed password hash")

// argonHasher is the private implementation of [PasswordHasher].
type argonHasher struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &argonHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// Hash implements [PasswordHasher].
func (a *argonHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := a.derive(password, salt)

	return base64.RawStdEncoding.EncodeToString(salt) + separator +
		base64.RawStdEncoding.EncodeToString(key), nil
}

// Verify implements [PasswordHasher]. The comparison runs in constant time.
func (a *argonHasher) Verify(password, encoded string) bool {
	salt, key, err := decode(encoded)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(a.derive(password, salt), key) == 1
}

func (a *argonHasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		a.argonTime,
		a.argonMemory,
		a.argonThreads,
		a.argonKeyLen,
	)
}

func decode(encoded string) (salt, key []byte, err error) {
	saltPart, keyPart, ok := strings.Cut(encoded, separator)
	if !ok || saltPart == "" || keyPart == "" {
		return nil, nil, ErrMalformedHash
	}

	if salt, err = base64.RawStdEncoding.DecodeString(saltPart); err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %w", ErrMalformedHash, err)
	}
	if key, err = base64.RawStdEncoding.DecodeString(keyPart); err != nil {
		return nil, nil, fmt.Errorf("%w: key: %w", ErrMalformedHash, err)
	}

	return salt, key, nil
}
