package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"

	"candyshop-backend/domain/core/entities"
	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/infrastructure/persistence/schema"
	apperrors "candyshop-backend/pkg/errors"
)

// CartRepository implements abstractions.CartRepository on the single table.
// A cart line is addressed by the composite (userID, productID) sort key;
// this layer cannot tell an empty cart from an unknown user and does not try.
type CartRepository struct {
	table  *Table
	logger *zap.Logger
}

// NewCartRepository creates a new cart repository
func NewCartRepository(table *Table, logger *zap.Logger) abstractions.CartRepository {
	return &CartRepository{table: table, logger: logger}
}

// ListForUser returns the user's cart lines. An empty slice is a valid
// outcome, not an error.
func (r *CartRepository) ListForUser(ctx context.Context, userID string) ([]entities.CartItem, error) {
	items, err := r.table.QueryPrefix(ctx, schema.CartPrefixForUser(userID))
	if err != nil {
		return nil, apperrors.NewStoreError("list cart", err)
	}

	cart := make([]entities.CartItem, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &cart); err != nil {
		return nil, apperrors.NewStoreError("list cart", err)
	}
	return cart, nil
}

// AddItem creates a cart line. The must-not-exist precondition is the
// idempotency guard: of two racing adds for the same line exactly one wins,
// the other sees a conflict and should use UpdateItem instead.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error) {
	key := schema.CartKey(userID, productID)
	line := entities.CartItem{
		PK:        key.PK,
		SK:        key.SK,
		UserID:    userID,
		ProductID: productID,
		Amount:    amount,
	}

	item, err := attributevalue.MarshalMap(line)
	if err != nil {
		return nil, apperrors.NewStoreError("add cart item", err)
	}

	if err := r.table.Put(ctx, item, MustNotExist); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("product '%s' is already in the cart, update the amount instead", productID))
		}
		return nil, apperrors.NewStoreError("add cart item", err)
	}

	r.logger.Info("Cart item added",
		zap.String("userId", userID),
		zap.String("productId", productID),
		zap.Int("amount", amount),
	)
	return &line, nil
}

// UpdateItem changes the quantity of an existing cart line.
func (r *CartRepository) UpdateItem(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error) {
	attrs, err := r.table.Update(ctx, schema.CartKey(userID, productID), map[string]interface{}{"amount": amount}, MustExist)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.NewNotFoundError("cart item")
		}
		return nil, apperrors.NewStoreError("update cart item", err)
	}

	var line entities.CartItem
	if err := attributevalue.UnmarshalMap(attrs, &line); err != nil {
		return nil, apperrors.NewStoreError("update cart item", err)
	}

	r.logger.Info("Cart item updated",
		zap.String("userId", userID),
		zap.String("productId", productID),
		zap.Int("amount", amount),
	)
	return &line, nil
}

// RemoveItem deletes one cart line; the line must exist.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	_, err := r.table.Delete(ctx, schema.CartKey(userID, productID), MustExist)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) || errors.Is(err, ErrItemNotFound) {
			return apperrors.NewNotFoundError("cart item")
		}
		return apperrors.NewStoreError("remove cart item", err)
	}

	r.logger.Info("Cart item removed",
		zap.String("userId", userID),
		zap.String("productId", productID),
	)
	return nil
}

// Clear deletes every cart line of the user, one delete per line. The batch
// is not atomic: a failed line is recorded and the loop continues, so the
// summary reports exactly what was removed. A cart with no lines at all is
// a not-found outcome.
func (r *CartRepository) Clear(ctx context.Context, userID string) (*abstractions.ClearSummary, error) {
	lines, err := r.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.NewNotFoundError("cart")
	}

	summary := &abstractions.ClearSummary{}
	for _, line := range lines {
		if _, err := r.table.Delete(ctx, schema.CartKey(userID, line.ProductID), NoCondition); err != nil {
			// A line deleted concurrently comes back as not found; that
			// still leaves the cart without the line, count it removed.
			if errors.Is(err, ErrItemNotFound) {
				summary.DeletedCount++
				continue
			}
			r.logger.Warn("Cart line delete failed during clear",
				zap.String("userId", userID),
				zap.String("productId", line.ProductID),
				zap.Error(err),
			)
			summary.Failed = append(summary.Failed, abstractions.ClearFailure{
				ProductID: line.ProductID,
				Reason:    "store rejected the delete",
			})
			continue
		}
		summary.DeletedCount++
	}

	r.logger.Info("Cart cleared",
		zap.String("userId", userID),
		zap.Int("deleted", summary.DeletedCount),
		zap.Int("failed", len(summary.Failed)),
	)
	return summary, nil
}
