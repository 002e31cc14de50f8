package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestGenerateToken_LengthAndCharset(t *testing.T) {
	codec := NewCodec()

	token, err := codec.GenerateToken()

	require.NoError(t, err)
	assert.Regexp(t, hexPattern, token)
}

func TestGenerateToken_NoCollisions(t *testing.T) {
	codec := NewCodec()
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		token, err := codec.GenerateToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "generated token collided after %d samples", i)
		seen[token] = struct{}{}
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	codec := NewCodec()

	token, err := codec.GenerateToken()
	require.NoError(t, err)

	assert.Equal(t, codec.HashToken(token), codec.HashToken(token))
}

func TestHashToken_KnownDigest(t *testing.T) {
	codec := NewCodec()

	// SHA-256 of the empty string, to pin the digest algorithm.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		codec.HashToken(""))
}

func TestHashToken_DistinctInputsDistinctDigests(t *testing.T) {
	codec := NewCodec()

	assert.NotEqual(t, codec.HashToken("a"), codec.HashToken("b"))
}

func TestHashToken_DiffersFromToken(t *testing.T) {
	codec := NewCodec()

	token, err := codec.GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, token, codec.HashToken(token))
	assert.Regexp(t, hexPattern, codec.HashToken(token))
}
