package ports

import (
	"context"

	"goaltracker-backend/domain/core/entities"
	"goaltracker-backend/domain/events"
)

// UserRepository is the persistence contract for user records.
type UserRepository interface {
	// CreateUser persists a new user for the given email and returns the
	// materialized record. Fails with a conflict error when the email is
	// already taken.
	CreateUser(ctx context.Context, email string) (*entities.User, error)

	// GetUser retrieves a user by its opaque identifier. Fails with a
	// not-found error when no record exists.
	GetUser(ctx context.Context, userID string) (*entities.User, error)
}

// EventBus publishes domain events to the rest of the system.
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
