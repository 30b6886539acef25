package service_test

import (
	"strings"
	"testing"

	"accountd/internal/domain"
	"accountd/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	hasher := service.NewArgon2Hasher("test-salt-16bytes")

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "long password", password: strings.Repeat("correct horse battery staple ", 4)},
		{name: "unicode password", password: "pässwörd-ütf8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
			assert.NotContains(t, hash, tt.password)

			ok, err := hasher.Verify(hash, tt.password)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestArgon2Hasher_Mismatch(t *testing.T) {
	hasher := service.NewArgon2Hasher("test-salt-16bytes")

	hash, err := hasher.Hash("correctpw")
	require.NoError(t, err)

	ok, err := hasher.Verify(hash, "wrongpw1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_Deterministic(t *testing.T) {
	// A fixed service-wide salt makes hashing deterministic per deployment.
	hasher := service.NewArgon2Hasher("test-salt-16bytes")

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other := service.NewArgon2Hasher("another-salt-value")
	different, err := other.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, first, different)
}

func TestArgon2Hasher_ShortSalt(t *testing.T) {
	hasher := service.NewArgon2Hasher("tiny")

	_, err := hasher.Hash("password123")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindHashing))
}

func TestArgon2Hasher_MalformedStoredHash(t *testing.T) {
	hasher := service.NewArgon2Hasher("test-salt-16bytes")

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "not a hash", stored: "plaintext-from-corrupted-storage"},
		{name: "wrong algorithm", stored: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad params", stored: "$argon2id$v=19$m=what$c2FsdA$aGFzaA"},
		{name: "zero time cost", stored: "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA"},
		{name: "zero memory", stored: "$argon2id$v=19$m=0,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "oversized memory", stored: "$argon2id$v=19$m=4294967295,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "zero threads", stored: "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA"},
		{name: "bad base64 salt", stored: "$argon2id$v=19$m=65536,t=1,p=4$!!!!$aGFzaA"},
		{name: "bad base64 hash", stored: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hasher.Verify(tt.stored, "password123")
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindHashing))
		})
	}
}
