package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"candyshop-backend/domain/core/validators"
	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/pkg/common"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users     abstractions.UserRepository
	validator *validators.UserValidator
	logger    *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users abstractions.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Error("Listing users failed", zap.Error(err))
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "could not read request body")
		return
	}

	input, err := h.validator.ValidateCreate(body)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	user, err := h.users.Create(r.Context(), input.UserID, input.Name)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, user)
}

// Update handles PUT /users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "could not read request body")
		return
	}

	input, err := h.validator.ValidatePatch(body)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	user, err := h.users.Update(r.Context(), userID, *input.Name)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}

	user, err := h.users.Delete(r.Context(), userID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}
