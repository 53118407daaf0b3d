package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goaltracker-backend/application/services"
	"goaltracker-backend/domain/core/entities"
	"goaltracker-backend/domain/events"
	pkgerrors "goaltracker-backend/pkg/errors"
	"goaltracker-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubUserRepository returns canned answers per email/ID.
type stubUserRepository struct {
	users      map[string]*entities.User // by ID
	duplicates map[string]bool           // emails that already exist
}

func (s *stubUserRepository) CreateUser(_ context.Context, email string) (*entities.User, error) {
	if s.duplicates[email] {
		return nil, pkgerrors.NewDuplicateUserError(email)
	}
	user, err := entities.NewUser(email)
	if err != nil {
		return nil, err
	}
	if s.users == nil {
		s.users = make(map[string]*entities.User)
	}
	s.users[user.UserID] = user
	return user, nil
}

func (s *stubUserRepository) GetUser(_ context.Context, userID string) (*entities.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user, nil
}

type noopEventBus struct{}

func (noopEventBus) Publish(context.Context, events.DomainEvent) error { return nil }

func newTestRouter(repo *stubUserRepository) http.Handler {
	logger := zap.NewNop()
	metrics := observability.NewMetrics("", nil, logger)
	svc := services.NewUserService(repo, noopEventBus{}, metrics, logger)
	handler := NewUserHandler(svc, logger)

	r := chi.NewRouter()
	r.Post("/api/v1/users", handler.CreateUser)
	r.Get("/api/v1/users/{userID}", handler.GetUser)
	return r
}

type userPayload struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type apiResponse struct {
	Success bool         `json:"success"`
	Data    *userPayload `json:"data"`
}

func TestCreateUserEndpoint(t *testing.T) {
	router := newTestRouter(&stubUserRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
		strings.NewReader(`{"email":"alice@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "alice@example.com", resp.Data.Email)
	assert.NotEmpty(t, resp.Data.UserID)
	assert.True(t, resp.Data.CreatedAt.Equal(resp.Data.UpdatedAt))
}

func TestCreateUserEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body object", body: `{}`},
		{name: "blank email", body: `{"email":""}`},
		{name: "whitespace email", body: `{"email":"   "}`},
		{name: "null email", body: `{"email":null}`},
		{name: "malformed JSON", body: `{"email"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubUserRepository{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateUserEndpointDuplicate(t *testing.T) {
	repo := &stubUserRepository{duplicates: map[string]bool{"alice@example.com": true}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
		strings.NewReader(`{"email":"alice@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var errResp pkgerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, pkgerrors.CodeDuplicateUser, errResp.Code)
}

func TestGetUserEndpoint(t *testing.T) {
	repo := &stubUserRepository{}
	router := newTestRouter(repo)

	created, err := repo.CreateUser(context.Background(), "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+created.UserID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, created.UserID, resp.Data.UserID)
	assert.Equal(t, "alice@example.com", resp.Data.Email)
}

func TestGetUserEndpointNotFound(t *testing.T) {
	router := newTestRouter(&stubUserRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/never-created", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserEndpointBlankID(t *testing.T) {
	router := newTestRouter(&stubUserRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/%20%20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
