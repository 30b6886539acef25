package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"accountd/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAuthError_Envelope(t *testing.T) {
	tests := []struct {
		name string
		err  *domain.AuthError
		want map[string][]string
	}{
		{
			name: "conflict carries its reason",
			err:  domain.Conflict("username is taken"),
			want: map[string][]string{"message": {"username is taken"}},
		},
		{
			name: "not found carries its reason",
			err:  domain.NotFound("username does not exist"),
			want: map[string][]string{"message": {"username does not exist"}},
		},
		{
			name: "invalid password",
			err:  domain.InvalidPassword(),
			want: map[string][]string{"message": {"invalid password"}},
		},
		{
			name: "unauthorized",
			err:  domain.Unauthorized(),
			want: map[string][]string{"message": {"unauthorized"}},
		},
		{
			name: "invalid token presents as unauthorized",
			err:  domain.InvalidToken(errors.New("signature is invalid")),
			want: map[string][]string{"message": {"unauthorized"}},
		},
		{
			name: "validation keeps per-field messages",
			err: domain.Validation(map[string][]string{
				"password": {"password is required"},
			}),
			want: map[string][]string{"password": {"password is required"}},
		},
		{
			name: "internal detail never leaks",
			err:  domain.Internal(errors.New("pq: connection refused")),
			want: map[string][]string{"message": {"internal server error"}},
		},
		{
			name: "hashing failures are opaque",
			err:  domain.HashingError(errors.New("invalid hash format")),
			want: map[string][]string{"message": {"internal server error"}},
		},
		{
			name: "signing failures are opaque",
			err:  domain.SigningError(errors.New("key must be []byte")),
			want: map[string][]string{"message": {"internal server error"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Envelope().Errors)
		})
	}
}

func TestAuthError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("store: %w", domain.Internal(cause))

	assert.True(t, domain.IsKind(wrapped, domain.KindInternal))
	assert.ErrorIs(t, wrapped, cause)
	assert.False(t, domain.IsKind(errors.New("plain"), domain.KindInternal))
}
