package auth

import (
	"strings"
	"testing"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func cheapHasher(minLength int) *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{
		BcryptCost:        bcrypt.MinCost,
		MinPasswordLength: minLength,
	}}).(*bcryptHasher)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := cheapHasher(6)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, hasher.Check("correct horse", hash))
	assert.False(t, hasher.Check("wrong horse", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("correct horse", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_PasswordRules(t *testing.T) {
	hasher := cheapHasher(6)

	tests := []struct {
		password string
		wantMsg  string
	}{
		{password: "abcdef"},
		{password: "pässwö"},
		{password: "abcde", wantMsg: "at least 6 characters"},
		{password: "", wantMsg: "at least 6 characters"},
		{password: strings.Repeat("a", 73), wantMsg: "at most 72 bytes"},
	}

	for _, tt := range tests {
		err := hasher.ValidatePasswordStrength(tt.password)
		if tt.wantMsg == "" {
			assert.NoError(t, err, tt.password)

			continue
		}
		require.ErrorIs(t, err, domainerrors.ErrPasswordStrength, tt.password)
		assert.Contains(t, err.Error(), tt.wantMsg)
	}

	_, err := hasher.Hash("123")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, cheapHasher(0).cost)
	assert.Equal(t, 6, cheapHasher(0).minLength)

	outOfRange := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, outOfRange.cost)

	hash, err := cheapHasher(6).Hash("secret1")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
