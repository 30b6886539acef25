package service

import (
	"context"
	"errors"

	"accountd/internal/domain"
	"accountd/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthService orchestrates registration, login and user lookup over the
// injected user store, password hasher and token issuer.
type AuthService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account. The lookup-then-insert sequence is not
// atomic; the store's unique constraint decides races, and its duplicate
// signal maps to the same conflict as the lookup hit.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if existing != nil {
		logrus.WithField("username", username).Warn("registration attempted for existing username")
		return nil, domain.Conflict("username is taken")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	// The store assigns id and timestamps on insert.
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domain.Conflict("username is taken")
		}
		return nil, domain.Internal(err)
	}

	return s.authenticated(user)
}

// Login authenticates an existing account and mints a fresh token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.NotFound("username does not exist")
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil || !ok {
		// A corrupted stored hash presents the same as a mismatch so the
		// caller cannot tell which one failed.
		return nil, domain.InvalidPassword()
	}

	return s.authenticated(user)
}

// GetUser resolves an id to its account and mints a fresh token for it.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.AuthenticatedUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal(err)
	}

	return s.authenticated(user)
}

func (s *AuthService) authenticated(user *domain.User) (*domain.AuthenticatedUser, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &domain.AuthenticatedUser{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}
