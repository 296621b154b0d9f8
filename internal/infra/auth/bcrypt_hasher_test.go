package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"uploader/config"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.NotContains(t, hash, password)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_CheckDummy(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	cost, err := bcrypt.Cost(hasher.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NotPanics(t, func() { hasher.CheckDummy("anything") })
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantCost int
		wantErr  bool
	}{
		{
			name:     "configured cost",
			cfg:      &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}},
			wantCost: bcrypt.MinCost,
		},
		{
			name:    "cost above maximum",
			cfg:     &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MaxCost + 1}},
			wantErr: true,
		},
		{
			name:    "cost below minimum",
			cfg:     &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := NewBcryptHasher(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, hasher)

				return
			}

			require.NoError(t, err)
			hash, err := hasher.Hash("StrongPass123!")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}
