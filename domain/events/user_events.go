package events

import "time"

// SourceBackend identifies this service as the event source on the bus.
const SourceBackend = "goaltracker.users"

// DomainEvent is the base interface for all domain events.
// Events describe something that has already happened.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// UserCreated is raised after a user record has been durably written.
type UserCreated struct {
	BaseEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// NewUserCreated creates a UserCreated event
func NewUserCreated(userID, email string, timestamp time.Time) UserCreated {
	return UserCreated{
		BaseEvent: BaseEvent{
			AggregateID: userID,
			EventType:   "user.created",
			Timestamp:   timestamp,
		},
		UserID: userID,
		Email:  email,
	}
}
