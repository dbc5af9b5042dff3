package repository

// PasswordHasher defines the interface for one-way password hashing
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A wrong
	// password is (false, nil); an unparseable hash is an error.
	Verify(plaintext, hash string) (bool, error)
}
