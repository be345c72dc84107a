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

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cart      abstractions.CartRepository
	validator *validators.CartValidator
	logger    *zap.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart abstractions.CartRepository, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:      cart,
		validator: validators.NewCartValidator(),
		logger:    logger,
	}
}

// List handles GET /cart/{userId}. An empty cart is 200 with an empty
// array; this layer cannot tell an empty cart from an unknown user.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}

	lines, err := h.cart.ListForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("Listing cart failed", zap.Error(err))
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, lines)
}

// Add handles POST /cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "could not read request body")
		return
	}

	input, err := h.validator.ValidateAdd(body)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	line, err := h.cart.AddItem(r.Context(), input.UserID, input.ProductID, *input.Amount)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, line)
}

// Update handles PUT /cart/{userId}/{productId}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}
	if err := validators.ValidateID("productId", productID); err != nil {
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

	line, err := h.cart.UpdateItem(r.Context(), userID, productID, *input.Amount)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, line)
}

// Remove handles DELETE /cart/{userId}/{productId}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}
	if err := validators.ValidateID("productId", productID); err != nil {
		common.RespondError(w, err)
		return
	}

	if err := h.cart.RemoveItem(r.Context(), userID, productID); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "item removed from cart")
}

// Clear handles DELETE /cart/{userId}
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if err := validators.ValidateID("userId", userID); err != nil {
		common.RespondError(w, err)
		return
	}

	summary, err := h.cart.Clear(r.Context(), userID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, summary)
}
