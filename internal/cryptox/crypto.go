// Package cryptox hashes and verifies account passwords for the devserver.
//
// Hashes are argon2id-derived keys stored as "argon2id$<salt hex>$<key hex>".
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/gymbro/internal/common"
)

const (
	hashScheme = "argon2id"
	saltSize   = 16
)

// ErrMalformedHash is returned when a stored hash cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt into a 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword derives a key with a fresh random salt and encodes both.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(password, salt)
	return strings.Join([]string{hashScheme, hex.EncodeToString(salt), hex.EncodeToString(key)}, "$")
}

// VerifyPassword reports whether password matches encoded. The comparison
// runs in constant time with respect to the key bytes.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashScheme {
		return false, ErrMalformedHash
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, ErrMalformedHash
	}

	got := DeriveKey(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
