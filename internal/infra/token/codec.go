// Package token implements edit token generation and hashing. The raw token
// is the bearer credential for profile mutation; only its SHA-256 digest is
// ever persisted.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"reachqr/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenByteLength yields 256 bits of entropy, rendered as 64 hex characters.
const tokenByteLength = 32

type codec struct{}

// NewCodec is the constructor for the token codec.
func NewCodec() service.TokenCodec {
	return &codec{}
}

// GenerateToken produces a fresh secret from the platform CSPRNG.
func (*codec) GenerateToken() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// HashToken returns the lowercase hex SHA-256 digest of a token.
func (*codec) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
