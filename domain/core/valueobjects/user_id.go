package valueobjects

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// UserID is a value object representing an opaque user identifier.
// Identifiers are generated server-side from 128 bits of randomness;
// uniqueness is probabilistic and never coordinated with storage. The
// authoritative uniqueness guard is the conditional write on the user's
// metadata key, not the generator.
type UserID struct {
	value string
}

// NewUserID creates a new random UserID
func NewUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// ParseUserID creates a UserID from a caller-supplied string. IDs are
// opaque to readers, so only blankness is rejected, not format.
func ParseUserID(id string) (UserID, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return UserID{}, errors.New("user ID cannot be empty")
	}
	return UserID{value: trimmed}, nil
}

// String returns the string representation of the UserID
func (id UserID) String() string {
	return id.value
}

// Equals checks if two UserIDs are equal
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}

// IsZero checks if the UserID is the zero value
func (id UserID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id UserID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *UserID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("UserID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
