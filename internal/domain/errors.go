package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an AuthError for status mapping at the transport boundary.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthorized
	KindInvalidPassword
	KindConflict
	KindNotFound
	KindValidation
	KindHashing
	KindSigning
)

// AuthError is the typed failure returned by the auth service. Every error that
// crosses the service boundary is one of these; anything else is treated as
// internal and rendered opaquely.
type AuthError struct {
	Kind   ErrorKind
	Reason string
	// Fields carries per-field messages for validation failures.
	Fields map[string][]string
	cause  error
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.cause)
	}
	return e.Reason
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

func Unauthorized() *AuthError {
	return &AuthError{Kind: KindUnauthorized, Reason: "unauthorized"}
}

func InvalidPassword() *AuthError {
	return &AuthError{Kind: KindInvalidPassword, Reason: "invalid password"}
}

func Conflict(reason string) *AuthError {
	return &AuthError{Kind: KindConflict, Reason: reason}
}

func NotFound(reason string) *AuthError {
	return &AuthError{Kind: KindNotFound, Reason: reason}
}

func Validation(fields map[string][]string) *AuthError {
	return &AuthError{Kind: KindValidation, Reason: "validation failed", Fields: fields}
}

func HashingError(cause error) *AuthError {
	return &AuthError{Kind: KindHashing, Reason: "password hashing failed", cause: cause}
}

func SigningError(cause error) *AuthError {
	return &AuthError{Kind: KindSigning, Reason: "token signing failed", cause: cause}
}

func Internal(cause error) *AuthError {
	return &AuthError{Kind: KindInternal, Reason: "internal error", cause: cause}
}

// InvalidToken marks a bearer token that failed signature verification or
// whose payload could not be parsed. It presents as Unauthorized to callers.
func InvalidToken(cause error) *AuthError {
	return &AuthError{Kind: KindUnauthorized, Reason: "invalid token", cause: cause}
}

// ErrorEnvelope is the uniform wire shape for failures: a map from a field
// name, or the literal key "message", to human-readable strings.
type ErrorEnvelope struct {
	Errors map[string][]string `json:"errors"`
}

// Envelope renders the error into the wire shape. Internal kinds collapse to a
// single opaque message; causes never leak.
func (e *AuthError) Envelope() ErrorEnvelope {
	switch e.Kind {
	case KindValidation:
		return ErrorEnvelope{Errors: e.Fields}
	case KindUnauthorized:
		return messageEnvelope("unauthorized")
	case KindInvalidPassword:
		return messageEnvelope("invalid password")
	case KindConflict, KindNotFound:
		return messageEnvelope(e.Reason)
	default:
		return messageEnvelope("internal server error")
	}
}

func messageEnvelope(msg string) ErrorEnvelope {
	return ErrorEnvelope{Errors: map[string][]string{"message": {msg}}}
}

// IsKind reports whether err is an AuthError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Kind == kind
}
