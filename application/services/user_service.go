package services

import (
	"context"
	"strings"
	"time"

	"goaltracker-backend/application/ports"
	"goaltracker-backend/domain/core/entities"
	"goaltracker-backend/domain/events"
	pkgerrors "goaltracker-backend/pkg/errors"
	"goaltracker-backend/pkg/observability"

	"go.uber.org/zap"
)

// UserService is the stable domain contract exposed to transport adapters.
// It trims and rejects blank input before delegating to the repository,
// which re-validates on its own; the service carries no other invariants.
type UserService struct {
	userRepo ports.UserRepository
	eventBus ports.EventBus
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo ports.UserRepository,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		eventBus: eventBus,
		metrics:  metrics,
		logger:   logger,
	}
}

// CreateUser creates a new user with the given email address.
func (s *UserService) CreateUser(ctx context.Context, email string) (*entities.User, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, pkgerrors.NewValidationError("email cannot be empty")
	}

	start := time.Now()
	user, err := s.userRepo.CreateUser(ctx, trimmed)
	s.metrics.RecordOperation(ctx, "CreateUser", time.Since(start), err)

	if err != nil {
		if pkgerrors.IsDuplicateUser(err) {
			s.metrics.RecordDuplicate(ctx)
		}
		return nil, err
	}

	// The record is durable once the conditional write succeeded; event
	// delivery is not. A failed publish is logged, never propagated.
	event := events.NewUserCreated(user.UserID, user.Email, user.CreatedAt)
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish user.created event",
			zap.String("userID", user.UserID),
			zap.Error(err),
		)
	}

	return user, nil
}

// GetUser retrieves a user by its identifier.
func (s *UserService) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return nil, pkgerrors.NewValidationError("user ID cannot be empty")
	}

	start := time.Now()
	user, err := s.userRepo.GetUser(ctx, trimmed)
	s.metrics.RecordOperation(ctx, "GetUser", time.Since(start), err)

	return user, err
}
