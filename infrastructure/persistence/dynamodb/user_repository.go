package dynamodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"goaltracker-backend/application/ports"
	"goaltracker-backend/domain/core/entities"
	"goaltracker-backend/infrastructure/persistence/abstractions"
	"goaltracker-backend/infrastructure/persistence/keys"
	pkgerrors "goaltracker-backend/pkg/errors"
	"goaltracker-backend/pkg/utils"

	"go.uber.org/zap"
)

// Attribute names of the user metadata record.
const (
	attrUserID     = "UserID"
	attrEmail      = "Email"
	attrEntityType = "EntityType"
	attrCreatedAt  = "CreatedAt"
	attrUpdatedAt  = "UpdatedAt"

	entityTypeUser = "USER"
)

// UserRepository implements ports.UserRepository over the single-table
// item store. It is stateless; the conditional write on the metadata key
// is the only concurrency control it relies on.
type UserRepository struct {
	store          abstractions.ItemStore
	emailIndexName string
	logger         *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(store abstractions.ItemStore, emailIndexName string, logger *zap.Logger) ports.UserRepository {
	return &UserRepository{
		store:          store,
		emailIndexName: emailIndexName,
		logger:         logger,
	}
}

// CreateUser creates a new user record.
//
// The email index lookup is a best-effort pre-check: the index is
// eventually consistent, so two concurrent creations with the same email
// can both pass it. The conditional write only guards the identifier key,
// which makes that a known, accepted race; enforcing strict email
// atomicity would need a second conditional write keyed by the email
// itself.
func (r *UserRepository) CreateUser(ctx context.Context, email string) (*entities.User, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, pkgerrors.NewValidationError("email cannot be empty")
	}

	existing, err := r.store.QueryIndex(ctx, r.emailIndexName, attrEmail, trimmed, keys.UserMetadataSortKey())
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("queryEmailIndex", err)
	}
	if len(existing) > 0 {
		r.logger.Info("rejected duplicate user", zap.String("email", trimmed))
		return nil, pkgerrors.NewDuplicateUserError(trimmed)
	}

	user, err := entities.NewUser(trimmed)
	if err != nil {
		return nil, err
	}

	item := abstractions.Item{
		abstractions.AttrPartitionKey: keys.UserPartitionKey(user.UserID),
		abstractions.AttrSortKey:      keys.UserMetadataSortKey(),
		attrEntityType:                entityTypeUser,
		attrUserID:                    user.UserID,
		attrEmail:                     user.Email,
		attrCreatedAt:                 utils.FormatRFC3339(user.CreatedAt),
		attrUpdatedAt:                 utils.FormatRFC3339(user.UpdatedAt),
	}

	if err := r.store.PutItemIfAbsent(ctx, item); err != nil {
		if errors.Is(err, abstractions.ErrItemAlreadyExists) {
			// The write condition is the source of truth for key-level
			// uniqueness; a rejection here means the generated identifier
			// already exists, which still reads as a duplicate to callers.
			return nil, pkgerrors.NewDuplicateUserError(trimmed)
		}
		return nil, pkgerrors.NewDatabaseError("putUser", err)
	}

	r.logger.Info("created user",
		zap.String("userID", user.UserID),
		zap.String("email", user.Email),
	)

	return user, nil
}

// GetUser looks up the user metadata record by identifier.
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return nil, pkgerrors.NewValidationError("user ID cannot be empty")
	}

	item, err := r.store.GetItem(ctx, keys.UserPartitionKey(trimmed), keys.UserMetadataSortKey())
	if err != nil {
		if errors.Is(err, abstractions.ErrItemNotFound) {
			return nil, pkgerrors.NewNotFoundError("user")
		}
		return nil, pkgerrors.NewDatabaseError("getUser", err)
	}

	return r.itemToUser(trimmed, item)
}

// itemToUser deserializes a stored metadata record. Malformed timestamps
// are an integrity fault, never silently defaulted.
func (r *UserRepository) itemToUser(userID string, item abstractions.Item) (*entities.User, error) {
	createdAt, err := r.parseTimestamp(userID, attrCreatedAt, item)
	if err != nil {
		return nil, err
	}
	updatedAt, err := r.parseTimestamp(userID, attrUpdatedAt, item)
	if err != nil {
		return nil, err
	}

	user, err := entities.ReconstructUser(item[attrUserID], item[attrEmail], createdAt, updatedAt)
	if err != nil {
		return nil, pkgerrors.NewCorruptRecordError(userID, err)
	}

	return user, nil
}

func (r *UserRepository) parseTimestamp(userID, attribute string, item abstractions.Item) (time.Time, error) {
	raw, ok := item[attribute]
	if !ok {
		err := pkgerrors.NewCorruptRecordError(userID, errors.New("missing "+attribute))
		r.logger.Error("corrupt user record", zap.String("userID", userID), zap.Error(err))
		return time.Time{}, err
	}

	t, err := utils.ParseRFC3339(raw)
	if err != nil {
		wrapped := pkgerrors.NewCorruptRecordError(userID, err)
		r.logger.Error("corrupt user record", zap.String("userID", userID), zap.Error(wrapped))
		return time.Time{}, wrapped
	}

	return t, nil
}
