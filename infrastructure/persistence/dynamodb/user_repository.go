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

// UserRepository implements abstractions.UserRepository on the single table.
type UserRepository struct {
	table  *Table
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(table *Table, logger *zap.Logger) abstractions.UserRepository {
	return &UserRepository{table: table, logger: logger}
}

// List returns every user record in store-native order.
func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	items, err := r.table.QueryPrefix(ctx, schema.AllUsers())
	if err != nil {
		return nil, apperrors.NewStoreError("list users", err)
	}

	users := make([]entities.User, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, apperrors.NewStoreError("list users", err)
	}
	return users, nil
}

// Get fetches one user by id.
func (r *UserRepository) Get(ctx context.Context, userID string) (*entities.User, error) {
	item, err := r.table.Get(ctx, schema.UserKey(userID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, apperrors.NewStoreError("get user", err)
	}

	var user entities.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, apperrors.NewStoreError("get user", err)
	}
	return &user, nil
}

// Create stores a new user. The must-not-exist precondition makes a retry
// or a racing duplicate surface as a conflict instead of an overwrite.
func (r *UserRepository) Create(ctx context.Context, userID, name string) (*entities.User, error) {
	key := schema.UserKey(userID)
	user := entities.User{
		PK:     key.PK,
		SK:     key.SK,
		UserID: userID,
		Name:   name,
	}

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return nil, apperrors.NewStoreError("create user", err)
	}

	if err := r.table.Put(ctx, item, MustNotExist); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("user '%s' already exists", userID))
		}
		return nil, apperrors.NewStoreError("create user", err)
	}

	r.logger.Info("User created", zap.String("userId", userID))
	return &user, nil
}

// Update changes the user's name. UserID is immutable, so the name is the
// only patchable field; the record must already exist.
func (r *UserRepository) Update(ctx context.Context, userID, name string) (*entities.User, error) {
	attrs, err := r.table.Update(ctx, schema.UserKey(userID), map[string]interface{}{"name": name}, MustExist)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, apperrors.NewStoreError("update user", err)
	}

	var user entities.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, apperrors.NewStoreError("update user", err)
	}

	r.logger.Info("User updated", zap.String("userId", userID))
	return &user, nil
}

// Delete removes the user and returns the record as it was stored.
func (r *UserRepository) Delete(ctx context.Context, userID string) (*entities.User, error) {
	attrs, err := r.table.Delete(ctx, schema.UserKey(userID), MustExist)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) || errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, apperrors.NewStoreError("delete user", err)
	}

	var user entities.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, apperrors.NewStoreError("delete user", err)
	}

	r.logger.Info("User deleted", zap.String("userId", userID))
	return &user, nil
}
