package entities

import (
	"strings"
	"time"

	"goaltracker-backend/domain/core/valueobjects"
	pkgerrors "goaltracker-backend/pkg/errors"
	"goaltracker-backend/pkg/utils"
)

// User is the account record backing the goal tracker. It is created once,
// never mutated in place (UpdatedAt is reserved for future update paths)
// and read back by ID.
type User struct {
	Entity
	Email string `json:"email"`
}

// NewUser creates a user with a freshly generated identifier. A single
// timestamp is captured so CreatedAt and UpdatedAt start out equal.
func NewUser(email string) (*User, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, pkgerrors.NewValidationError("email cannot be empty")
	}

	now := utils.NowUTC()
	return &User{
		Entity: Entity{
			UserID:    valueobjects.NewUserID().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email: trimmed,
	}, nil
}

// ReconstructUser rehydrates a user from stored attributes with preserved
// timestamps. Used by the repository only.
func ReconstructUser(userID, email string, createdAt, updatedAt time.Time) (*User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.NewValidationError("email cannot be empty")
	}

	return &User{
		Entity: Entity{
			UserID:    userID,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
		Email: email,
	}, nil
}
