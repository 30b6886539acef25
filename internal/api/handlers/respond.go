package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"accountd/internal/domain"

	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, domain.ErrorEnvelope{
		Errors: map[string][]string{"message": {msg}},
	})
}

// respondError renders any service error into the uniform error envelope.
// Unrecognized errors collapse to an opaque internal server error.
func respondError(w http.ResponseWriter, err error) {
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		authErr = domain.Internal(err)
	}

	status := statusFor(authErr.Kind)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}

	respondJSON(w, status, authErr.Envelope())
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindInvalidPassword:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusUnprocessableEntity
	default:
		// Hashing, signing and unclassified failures are internal; detail
		// never reaches the caller.
		return http.StatusInternalServerError
	}
}
