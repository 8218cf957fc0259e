package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the shortest accepted passphrase.
	MinPasswordLength = 8
	// MaxPasswordLength is the longest accepted passphrase.
	MaxPasswordLength = 128
)

// prehash folds the passphrase through SHA-256 before bcrypt sees it. bcrypt
// silently truncates input beyond 72 bytes, the pre-hash keeps long
// passphrases fully significant.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))

	return []byte(hex.EncodeToString(sum[:]))
}

// HashPassword derives a bcrypt hash from the SHA-256 pre-hashed passphrase.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the passphrase matches the stored hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}
