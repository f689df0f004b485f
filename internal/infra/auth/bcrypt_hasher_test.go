package auth

import (
	"testing"

	"github.com/Abros3006/business-tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Invite: &config.InviteConfig{BcryptCost: bcrypt.MinCost}})

	code := "K7Q2-M9XD-4HTP"
	hash, err := hasher.Hash(code)
	require.NoError(t, err)
	assert.NotEqual(t, code, hash)

	assert.True(t, hasher.Check(code, hash))
	assert.False(t, hasher.Check("K7Q2-M9XD-4HTX", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(code, "invalid_hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Invite: &config.InviteConfig{BcryptCost: 5}}, want: 5},
		{name: "out of range", cfg: &config.Config{Invite: &config.InviteConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Invite: &config.InviteConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("same-code")
	require.NoError(t, err)
	second, err := hasher.Hash("same-code")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-code", first))
	assert.True(t, hasher.Check("same-code", second))
}
