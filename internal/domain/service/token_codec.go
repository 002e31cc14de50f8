package service

// TokenCodec defines the interface for minting and digesting edit tokens.
// Possession of a raw token is the sole credential for mutating a profile,
// so generation must be cryptographically unpredictable and only the digest
// may ever be persisted.
type TokenCodec interface {
	// GenerateToken produces a fresh secret with at least 256 bits of
	// entropy, rendered as a fixed-length lowercase hex string.
	GenerateToken() (string, error)

	// HashToken returns the deterministic one-way digest of a token. It is
	// pure and stateless: the same token always yields the same digest.
	HashToken(token string) string
}
