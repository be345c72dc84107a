package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"candyshop-backend/domain/catalog"
	"candyshop-backend/domain/core/entities"
	"candyshop-backend/domain/core/validators"
	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/pkg/common"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	products  abstractions.ProductRepository
	validator *validators.ProductValidator
	logger    *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products abstractions.ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products:  products,
		validator: validators.NewProductValidator(),
		logger:    logger,
	}
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		h.logger.Error("Listing products failed", zap.Error(err))
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if err := validators.ValidateID("productId", productID); err != nil {
		common.RespondError(w, err)
		return
	}

	product, err := h.products.Get(r.Context(), productID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	product, err := h.products.Create(r.Context(), entities.Product{
		ProductID:     input.ProductID,
		Name:          input.Name,
		Price:         *input.Price,
		Image:         input.Image,
		AmountInStock: *input.AmountInStock,
	})
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
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

	product, err := h.products.Update(r.Context(), productID, input.Fields())
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if err := validators.ValidateID("productId", productID); err != nil {
		common.RespondError(w, err)
		return
	}

	product, err := h.products.Delete(r.Context(), productID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, product)
}

// Seed handles POST /products/seed
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	summary, err := h.products.Seed(r.Context(), catalog.Products())
	if err != nil {
		h.logger.Error("Seeding catalog failed", zap.Error(err))
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, summary)
}
