package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, hasher.Verify("secret123", digest))
	assert.False(t, hasher.Verify("wrongpassword", digest))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := NewHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewHasher(bcrypt.MaxCost + 1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestVerifyRejectsMalformedDigest(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("secret123", "not-a-bcrypt-digest"))
}
