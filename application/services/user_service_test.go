package services

import (
	"context"
	"testing"
	"time"

	"goaltracker-backend/domain/core/entities"
	"goaltracker-backend/domain/events"
	pkgerrors "goaltracker-backend/pkg/errors"
	"goaltracker-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type recordingEventBus struct {
	published []events.DomainEvent
}

func (b *recordingEventBus) Publish(_ context.Context, event events.DomainEvent) error {
	b.published = append(b.published, event)
	return nil
}

func testUser(userID, email string) *entities.User {
	now := time.Now().UTC()
	user, err := entities.ReconstructUser(userID, email, now, now)
	if err != nil {
		panic(err)
	}
	return user
}

func newTestService(repo *mockUserRepository, bus *recordingEventBus) *UserService {
	metrics := observability.NewMetrics("", nil, zap.NewNop())
	return NewUserService(repo, bus, metrics, zap.NewNop())
}

func TestCreateUserDelegatesTrimmedEmail(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	expected := testUser("user-1", "alice@example.com")
	repo.On("CreateUser", mock.Anything, "alice@example.com").Return(expected, nil)

	user, err := svc.CreateUser(context.Background(), "  alice@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, expected, user)

	repo.AssertExpectations(t)
}

func TestCreateUserPublishesEvent(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	expected := testUser("user-1", "alice@example.com")
	repo.On("CreateUser", mock.Anything, "alice@example.com").Return(expected, nil)

	_, err := svc.CreateUser(context.Background(), "alice@example.com")
	require.NoError(t, err)

	require.Len(t, bus.published, 1)
	assert.Equal(t, "user.created", bus.published[0].GetEventType())
	assert.Equal(t, "user-1", bus.published[0].GetAggregateID())
}

func TestCreateUserBlankEmail(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	for _, email := range []string{"", "   ", "\t"} {
		_, err := svc.CreateUser(context.Background(), email)
		assert.True(t, pkgerrors.IsValidation(err), "email %q", email)
	}

	// The repository is never reached and no event is published
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	assert.Empty(t, bus.published)
}

func TestCreateUserDuplicatePropagates(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	repo.On("CreateUser", mock.Anything, "alice@example.com").
		Return(nil, pkgerrors.NewDuplicateUserError("alice@example.com"))

	_, err := svc.CreateUser(context.Background(), "alice@example.com")
	assert.True(t, pkgerrors.IsDuplicateUser(err))
	assert.Empty(t, bus.published)
}

func TestGetUserDelegatesTrimmedID(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	expected := testUser("user-1", "alice@example.com")
	repo.On("GetUser", mock.Anything, "user-1").Return(expected, nil)

	user, err := svc.GetUser(context.Background(), "  user-1  ")
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestGetUserBlankID(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	for _, id := range []string{"", "   "} {
		_, err := svc.GetUser(context.Background(), id)
		assert.True(t, pkgerrors.IsValidation(err), "id %q", id)
	}

	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestGetUserNotFoundPropagates(t *testing.T) {
	repo := new(mockUserRepository)
	bus := new(recordingEventBus)
	svc := newTestService(repo, bus)

	repo.On("GetUser", mock.Anything, "missing").
		Return(nil, pkgerrors.NewNotFoundError("user"))

	_, err := svc.GetUser(context.Background(), "missing")
	assert.True(t, pkgerrors.IsNotFound(err))
}
