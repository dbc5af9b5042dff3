package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash indicates a stored hash that bcrypt cannot parse, which
// points at corrupted storage rather than a wrong password.
var ErrMalformedHash = errors.New("stored password hash is malformed")

// BcryptHasher performs one-way salted password hashing. bcrypt embeds the
// salt and cost in the hash string, so verification needs no extra state.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted hash of the plaintext password.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash. A mismatch
// returns (false, nil); only a hash that cannot be parsed returns an error.
func (h *BcryptHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrMalformedHash
}
