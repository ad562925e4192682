package service

// TokenGenerator produces opaque bearer tokens handed out on login. Tokens
// carry no claims and no expiry; they are unpredictable random values and
// nothing more.
type TokenGenerator interface {
	// Generate returns a fresh cryptographically random token.
	Generate() (string, error)
}
