package service

import (
	"accountd/internal/config"
	"accountd/internal/repository"
)

type Services struct {
	Auth   *AuthService
	Tokens TokenIssuer
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := NewArgon2Hasher(cfg.Auth.PasswordSalt)
	tokens := NewJWTIssuer(cfg.Auth.TokenSecret)

	return &Services{
		Auth:   NewAuthService(repos.User, hasher, tokens),
		Tokens: tokens,
	}
}
