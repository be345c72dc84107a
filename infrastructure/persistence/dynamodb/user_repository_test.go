package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"candyshop-backend/domain/core/entities"
	apperrors "candyshop-backend/pkg/errors"
)

func userItem(t *testing.T, user entities.User) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(user)
	require.NoError(t, err)
	return item
}

func TestUserRepositoryCreate(t *testing.T) {
	t.Run("stores the record under the user key", func(t *testing.T) {
		var put *awsdynamodb.PutItemInput
		client := &MockClient{
			PutItemFn: func(ctx context.Context, params *awsdynamodb.PutItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.PutItemOutput, error) {
				put = params
				return &awsdynamodb.PutItemOutput{}, nil
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		user, err := repo.Create(context.Background(), "alice", "Alice Svensson")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.UserID)
		assert.Equal(t, "Alice Svensson", user.Name)

		require.NotNil(t, put)
		assert.Equal(t, stringAttr("USER"), put.Item["pk"])
		assert.Equal(t, stringAttr("USER#alice"), put.Item["sk"])
		require.NotNil(t, put.ConditionExpression)
	})

	t.Run("maps a condition failure to conflict", func(t *testing.T) {
		client := &MockClient{
			PutItemFn: func(ctx context.Context, params *awsdynamodb.PutItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		_, err := repo.Create(context.Background(), "alice", "Alice")
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestUserRepositoryGet(t *testing.T) {
	t.Run("round-trips the stored record", func(t *testing.T) {
		stored := entities.User{PK: "USER", SK: "USER#alice", UserID: "alice", Name: "Alice"}
		client := &MockClient{
			GetItemFn: func(ctx context.Context, params *awsdynamodb.GetItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error) {
				return &awsdynamodb.GetItemOutput{Item: userItem(t, stored)}, nil
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		user, err := repo.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, stored.UserID, user.UserID)
		assert.Equal(t, stored.Name, user.Name)
	})

	t.Run("maps an absent record to not found", func(t *testing.T) {
		repo := NewUserRepository(newTestTable(&MockClient{}), zap.NewNop())

		_, err := repo.Get(context.Background(), "ghost")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	t.Run("patches the name only", func(t *testing.T) {
		client := &MockClient{
			UpdateItemFn: func(ctx context.Context, params *awsdynamodb.UpdateItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.UpdateItemOutput, error) {
				require.NotNil(t, params.ConditionExpression)
				return &awsdynamodb.UpdateItemOutput{
					Attributes: userItem(t, entities.User{PK: "USER", SK: "USER#alice", UserID: "alice", Name: "New Name"}),
				}, nil
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		user, err := repo.Update(context.Background(), "alice", "New Name")
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "alice", user.UserID)
	})

	t.Run("does not create a record for an unknown user", func(t *testing.T) {
		client := &MockClient{
			UpdateItemFn: func(ctx context.Context, params *awsdynamodb.UpdateItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		_, err := repo.Update(context.Background(), "ghost", "Name")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepositoryDelete(t *testing.T) {
	t.Run("returns the record that was stored", func(t *testing.T) {
		stored := entities.User{PK: "USER", SK: "USER#alice", UserID: "alice", Name: "Alice"}
		client := &MockClient{
			DeleteItemFn: func(ctx context.Context, params *awsdynamodb.DeleteItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.DeleteItemOutput, error) {
				return &awsdynamodb.DeleteItemOutput{Attributes: userItem(t, stored)}, nil
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		user, err := repo.Delete(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.UserID)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("maps a condition failure to not found", func(t *testing.T) {
		client := &MockClient{
			DeleteItemFn: func(ctx context.Context, params *awsdynamodb.DeleteItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.DeleteItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewUserRepository(newTestTable(client), zap.NewNop())

		_, err := repo.Delete(context.Background(), "ghost")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepositoryList(t *testing.T) {
	client := &MockClient{
		QueryFn: func(ctx context.Context, params *awsdynamodb.QueryInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.QueryOutput, error) {
			return &awsdynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				userItem(t, entities.User{PK: "USER", SK: "USER#a", UserID: "a", Name: "Alice"}),
				userItem(t, entities.User{PK: "USER", SK: "USER#b", UserID: "b", Name: "Bob"}),
			}}, nil
		},
	}
	repo := NewUserRepository(newTestTable(client), zap.NewNop())

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}
