// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies salted one-way password hashes.
// This abstracts the underlying derivation (PBKDF2), keeping the domain pure.
type PasswordHasher interface {
	// CreateHash generates a fresh random salt and derives a fixed-length
	// key from the plaintext password. Both are returned base64-encoded.
	CreateHash(password string) (hash string, salt string, err error)

	// Verify recomputes the derivation with the stored salt and compares it
	// to the stored hash in constant time. A mismatch is the normal
	// (false, nil) result; a hash or salt that cannot be decoded is an
	// error, distinct from a mismatch.
	Verify(password, hash, salt string) (bool, error)
}
