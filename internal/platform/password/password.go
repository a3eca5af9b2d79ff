// Package password wraps the adaptive password hashing used for stored
// credentials behind a small, injectable type.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor used for new hashes.
const hashCost = 10

// BcryptHasher hashes and verifies passwords with bcrypt. A random salt is
// generated per call, so two hashes of the same plaintext differ.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default cost factor.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

// Hash returns the bcrypt digest of plaintext. Length and strength policy
// is enforced by callers, not here.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DummyDigest is a valid bcrypt digest of a throwaway value. Login flows
// compare against it when no user matches the given email, so the time
// spent does not reveal whether the account exists.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
