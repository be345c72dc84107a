package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"candyshop-backend/domain/catalog"
	"candyshop-backend/domain/core/entities"
	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/infrastructure/persistence/schema"
	apperrors "candyshop-backend/pkg/errors"
)

// ProductRepository implements abstractions.ProductRepository on the
// single table.
type ProductRepository struct {
	table  *Table
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(table *Table, logger *zap.Logger) abstractions.ProductRepository {
	return &ProductRepository{table: table, logger: logger}
}

// List returns every catalog record in store-native order.
func (r *ProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	items, err := r.table.QueryPrefix(ctx, schema.AllProducts())
	if err != nil {
		return nil, apperrors.NewStoreError("list products", err)
	}

	products := make([]entities.Product, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &products); err != nil {
		return nil, apperrors.NewStoreError("list products", err)
	}
	return products, nil
}

// Get fetches one product by id.
func (r *ProductRepository) Get(ctx context.Context, productID string) (*entities.Product, error) {
	item, err := r.table.Get(ctx, schema.ProductKey(productID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewStoreError("get product", err)
	}

	var product entities.Product
	if err := attributevalue.UnmarshalMap(item, &product); err != nil {
		return nil, apperrors.NewStoreError("get product", err)
	}
	return &product, nil
}

// Create stores a product. Creation carries no existence precondition;
// writing the same id again replaces the record.
func (r *ProductRepository) Create(ctx context.Context, product entities.Product) (*entities.Product, error) {
	key := schema.ProductKey(product.ProductID)
	product.PK = key.PK
	product.SK = key.SK

	item, err := attributevalue.MarshalMap(product)
	if err != nil {
		return nil, apperrors.NewStoreError("create product", err)
	}

	if err := r.table.Put(ctx, item, NoCondition); err != nil {
		return nil, apperrors.NewStoreError("create product", err)
	}

	r.logger.Info("Product created", zap.String("productId", product.ProductID))
	return &product, nil
}

// Update patches the supplied fields only. The base record must exist; an
// update never upserts.
func (r *ProductRepository) Update(ctx context.Context, productID string, fields map[string]interface{}) (*entities.Product, error) {
	attrs, err := r.table.Update(ctx, schema.ProductKey(productID), fields, MustExist)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewStoreError("update product", err)
	}

	var product entities.Product
	if err := attributevalue.UnmarshalMap(attrs, &product); err != nil {
		return nil, apperrors.NewStoreError("update product", err)
	}

	r.logger.Info("Product updated", zap.String("productId", productID))
	return &product, nil
}

// Delete removes the product and returns the last stored record.
func (r *ProductRepository) Delete(ctx context.Context, productID string) (*entities.Product, error) {
	attrs, err := r.table.Delete(ctx, schema.ProductKey(productID), MustExist)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) || errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewStoreError("delete product", err)
	}

	var product entities.Product
	if err := attributevalue.UnmarshalMap(attrs, &product); err != nil {
		return nil, apperrors.NewStoreError("delete product", err)
	}

	r.logger.Info("Product deleted", zap.String("productId", productID))
	return &product, nil
}

// Seed bulk-loads the catalog best-effort. Each item is stored with its own
// put; a failed item lands in the summary and the batch moves on. The load
// is not transactional and concurrent seeds interleave at item granularity.
func (r *ProductRepository) Seed(ctx context.Context, items []catalog.SeedProduct) (*abstractions.SeedSummary, error) {
	summary := &abstractions.SeedSummary{
		BatchID: uuid.New().String(),
		Failed:  []abstractions.SeedFailure{},
	}

	for _, seed := range items {
		product := entities.Product{
			ProductID:     seed.ProductID,
			Name:          seed.Name,
			Price:         seed.Price,
			Image:         seed.Image,
			AmountInStock: seed.AmountInStock,
		}
		if _, err := r.Create(ctx, product); err != nil {
			r.logger.Warn("Seed item failed",
				zap.String("batchId", summary.BatchID),
				zap.String("productId", seed.ProductID),
				zap.Error(err),
			)
			summary.Failed = append(summary.Failed, abstractions.SeedFailure{
				ProductID: seed.ProductID,
				Reason:    "store rejected the item",
			})
			continue
		}
		summary.Succeeded++
	}

	r.logger.Info("Catalog seeded",
		zap.String("batchId", summary.BatchID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", len(summary.Failed)),
	)
	return summary, nil
}
