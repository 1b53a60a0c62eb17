package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	ok, err := h.Verify(hash, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "hunter3")
	require.NoError(t, err)
	assert.False(t, ok, "wrong secret must verify false without error")
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	h := New(bcrypt.MinCost)

	ok, err := h.Verify("not-a-bcrypt-hash", "hunter2")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestHasher_DefaultCost(t *testing.T) {
	h := New(DefaultCost)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost, "default work factor is 10")
}

func TestNew_ClampsOutOfRangeCost(t *testing.T) {
	assert.Equal(t, DefaultCost, New(0).Cost())
	assert.Equal(t, DefaultCost, New(-4).Cost())
	assert.Equal(t, DefaultCost, New(bcrypt.MaxCost+1).Cost())
	assert.Equal(t, 12, New(12).Cost())
}
