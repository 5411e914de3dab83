// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies account passwords of the development
// backend with Argon2id.
package crypto

// PasswordHasher turns plain passwords into self-contained encoded hashes and
// checks candidates against them.
//
// Scheme:
//
//	salt    = 16 random bytes
//	key     = Argon2id(password, salt)
//	encoded = base64(salt) + "$" + base64(key)
type PasswordHasher interface {
	// Hash returns the encoded hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password produces the key stored in encoded.
	// A malformed encoded value never verifies.
	Verify(password, encoded string) bool
}
