package handlers

import (
	"net/http"

	"goaltracker-backend/application/services"
	"goaltracker-backend/pkg/common"
	pkgerrors "goaltracker-backend/pkg/errors"
	"goaltracker-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 16

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService  *services.UserService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService:  userService,
		errorHandler: pkgerrors.NewErrorHandler(logger),
		logger:       logger,
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Email string `json:"email" validate:"required"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Email)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, user)
}
