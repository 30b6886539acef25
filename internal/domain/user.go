package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record. Rows are immutable after creation;
// there is no password-change or profile-update flow.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthenticatedUser is the client-facing view of a successful auth operation.
// A fresh token is minted for every register/login/get call.
type AuthenticatedUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Token    string    `json:"token"`
}
