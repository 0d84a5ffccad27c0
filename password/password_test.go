package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("foobar")
	require.NoError(t, err)
	assert.NotEqual(t, "foobar", hash)
	assert.True(t, h.Verify(hash, "foobar"))
	assert.False(t, h.Verify(hash, "foobaz"))
	assert.False(t, h.Verify("not-a-digest", "foobar"))

	// salted: same plaintext, different digest
	again, err := h.Hash("foobar")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestNewBcryptClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}

func TestHashRejectsLongPassword(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", MaxBytes+1))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestChecks(t *testing.T) {
	assert.NoError(t, CheckLength(strings.Repeat("a", MaxBytes)))
	assert.ErrorIs(t, CheckLength(strings.Repeat("é", 37)), ErrTooLong) // 74 bytes

	assert.NoError(t, CheckConfirmation("foobar", "foobar"))
	assert.ErrorIs(t, CheckConfirmation("foobar", "foobaz"), ErrConfirmationMismatch)
}
