package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()

	digest, err := h.Hash("abcdef")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "abcdef", digest)

	// Per-call random salt: hashing the same plaintext twice differs.
	digest2, err := h.Hash("abcdef")
	require.NoError(t, err)
	assert.NotEqual(t, digest, digest2)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_Verify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	digest, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.True(t, h.Verify("correct horse", digest))
	assert.False(t, h.Verify("wrong horse", digest))
	assert.False(t, h.Verify("correct horse", "not-a-digest"))
}

func TestDummyDigest(t *testing.T) {
	t.Parallel()

	// The dummy digest must be a parseable bcrypt hash so login-time
	// comparisons against it take the same time as real ones.
	_, err := bcrypt.Cost([]byte(DummyDigest))
	assert.NoError(t, err)
}
