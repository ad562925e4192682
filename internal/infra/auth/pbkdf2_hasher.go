// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"userperm/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	defaultIterations = 100_000
	saltLength        = 16
	keyLength         = 32
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2 with SHA-256. The iteration count is the only tunable; salt
// and key sizes are fixed.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher with the default
// iteration count.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{iterations: defaultIterations}
}

// NewPBKDF2HasherWithIterations creates a hasher with a custom iteration
// count. Counts below the default weaken the derivation and are only meant
// for tests.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// CreateHash generates a random salt and derives a fixed-length key from the
// password. Hash and salt are returned base64-encoded.
func (h *pbkdf2Hasher) CreateHash(password string) (string, string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(salt), nil
}

// Verify recomputes the derivation with the stored salt and compares it to
// the stored hash in constant time. A mismatch is a normal false result;
// hash or salt material that cannot be decoded is an error.
func (h *pbkdf2Hasher) Verify(password, hash, salt string) (bool, error) {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode stored salt")
	}

	hashBytes, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode stored hash")
	}

	computed := pbkdf2.Key([]byte(password), saltBytes, h.iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(computed, hashBytes) == 1, nil
}
