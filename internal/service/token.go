package service

import (
	"errors"

	"accountd/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer creates and validates signed bearer tokens binding a user identity.
type TokenIssuer interface {
	Issue(userID uuid.UUID, username string) (string, error)
	// Verify checks the signature and returns the embedded user id.
	Verify(token string) (uuid.UUID, error)
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens with a process-wide symmetric secret.
// Claims are exactly {sub: username, user_id}; no expiry is set, so tokens
// stay valid until the secret rotates.
type JWTIssuer struct {
	secret []byte
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

func (i *JWTIssuer) Issue(userID uuid.UUID, username string) (string, error) {
	claims := tokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: username,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", domain.SigningError(err)
	}
	return signed, nil
}

func (i *JWTIssuer) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return uuid.Nil, domain.InvalidToken(err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, domain.InvalidToken(errors.New("invalid claims"))
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, domain.InvalidToken(err)
	}
	return userID, nil
}
