// Package abstractions defines the repository contracts the HTTP layer
// depends on, keeping handlers decoupled from the DynamoDB implementation.
package abstractions

import (
	"context"

	"candyshop-backend/domain/catalog"
	"candyshop-backend/domain/core/entities"
)

// UserRepository manages user records.
type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	Get(ctx context.Context, userID string) (*entities.User, error)
	// Create fails with a conflict error when the userID is already taken.
	Create(ctx context.Context, userID, name string) (*entities.User, error)
	// Update patches the name and fails with a not-found error when the
	// user does not exist; no record is created.
	Update(ctx context.Context, userID, name string) (*entities.User, error)
	// Delete removes the user and returns the deleted record.
	Delete(ctx context.Context, userID string) (*entities.User, error)
}

// ProductRepository manages catalog records.
type ProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	Get(ctx context.Context, productID string) (*entities.Product, error)
	Create(ctx context.Context, product entities.Product) (*entities.Product, error)
	// Update applies only the supplied fields; the base record must exist.
	Update(ctx context.Context, productID string, fields map[string]interface{}) (*entities.Product, error)
	Delete(ctx context.Context, productID string) (*entities.Product, error)
	// Seed bulk-loads the static catalog best-effort; per-item failures
	// land in the summary instead of aborting the batch.
	Seed(ctx context.Context, items []catalog.SeedProduct) (*SeedSummary, error)
}

// CartRepository manages per-user cart lines.
type CartRepository interface {
	// ListForUser returns the user's cart lines; an empty cart is a valid
	// empty slice, not an error.
	ListForUser(ctx context.Context, userID string) ([]entities.CartItem, error)
	// AddItem fails with a conflict error when the (userID, productID)
	// line already exists.
	AddItem(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error)
	UpdateItem(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error)
	RemoveItem(ctx context.Context, userID, productID string) error
	// Clear deletes the user's cart lines one by one, continuing past
	// per-item failures; the summary reports what was actually removed.
	Clear(ctx context.Context, userID string) (*ClearSummary, error)
}

// SeedSummary reports the outcome of a best-effort catalog load.
type SeedSummary struct {
	BatchID   string        `json:"batchId"`
	Succeeded int           `json:"succeeded"`
	Failed    []SeedFailure `json:"failed"`
}

// SeedFailure records one item the loader could not store.
type SeedFailure struct {
	ProductID string `json:"productId"`
	Reason    string `json:"reason"`
}

// ClearSummary reports the outcome of a best-effort cart clear.
type ClearSummary struct {
	DeletedCount int            `json:"deletedCount"`
	Failed       []ClearFailure `json:"failed,omitempty"`
}

// ClearFailure records one cart line that could not be removed.
type ClearFailure struct {
	ProductID string `json:"productId"`
	Reason    string `json:"reason"`
}
