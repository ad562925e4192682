package auth

import (
	"crypto/rand"
	"encoding/base64"

	"userperm/internal/domain/service"

	"github.com/pkg/errors"
)

const tokenLength = 32

// opaqueTokenGenerator produces unstructured random bearer tokens. No
// claims, no signature, no expiry; callers treat the value as opaque.
type opaqueTokenGenerator struct{}

// NewOpaqueTokenGenerator is the constructor for opaqueTokenGenerator.
func NewOpaqueTokenGenerator() service.TokenGenerator {
	return &opaqueTokenGenerator{}
}

// Generate returns a fresh token from the system CSPRNG, URL-safe encoded.
func (g *opaqueTokenGenerator) Generate() (string, error) {
	raw := make([]byte, tokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
