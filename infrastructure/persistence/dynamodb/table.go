// Package dynamodb implements the single-table persistence layer. One
// physical table holds users, products and cart lines; the Table gateway
// exposes the conditional get/put/update/delete/query-by-prefix capability
// the repositories build on.
package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"candyshop-backend/infrastructure/persistence/schema"
)

// Precondition is the existence check the store enforces atomically at
// write time.
type Precondition int

const (
	// NoCondition writes unconditionally.
	NoCondition Precondition = iota
	// MustNotExist fails the write when a record already sits at the key.
	MustNotExist
	// MustExist fails the write when no record sits at the key.
	MustExist
)

var (
	// ErrItemNotFound signals an absent record on a read.
	ErrItemNotFound = errors.New("item not found")
	// ErrConditionFailed signals a violated write precondition.
	ErrConditionFailed = errors.New("conditional check failed")
)

// Table wraps the DynamoDB client with the table name and the composite-key
// access patterns.
type Table struct {
	client Client
	name   string
	logger *zap.Logger
}

// NewTable creates a table gateway.
func NewTable(client Client, name string, logger *zap.Logger) *Table {
	return &Table{
		client: client,
		name:   name,
		logger: logger,
	}
}

// Name returns the physical table name.
func (t *Table) Name() string {
	return t.name
}

func keyAttributes(key schema.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: key.PK},
		"sk": &types.AttributeValueMemberS{Value: key.SK},
	}
}

// Get fetches the record at the key, or ErrItemNotFound.
func (t *Table) Get(ctx context.Context, key schema.Key) (map[string]types.AttributeValue, error) {
	out, err := t.client.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       keyAttributes(key),
	})
	if err != nil {
		return nil, t.translate("get", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrItemNotFound
	}
	return out.Item, nil
}

// Put writes a full record. With MustNotExist the write fails with
// ErrConditionFailed when the key is already taken; the store enforces the
// check atomically, so two racing creates resolve to exactly one winner.
func (t *Table) Put(ctx context.Context, item map[string]types.AttributeValue, cond Precondition) error {
	input := &awsdynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      item,
	}
	switch cond {
	case MustNotExist:
		input.ConditionExpression = aws.String("attribute_not_exists(pk) AND attribute_not_exists(sk)")
	case MustExist:
		input.ConditionExpression = aws.String("attribute_exists(pk) AND attribute_exists(sk)")
	}

	if _, err := t.client.PutItem(ctx, input); err != nil {
		return t.translate("put", err)
	}
	return nil
}

// Update applies a SET for each supplied field and returns the record as it
// stands after the write. Unsupplied fields are preserved by the store.
func (t *Table) Update(ctx context.Context, key schema.Key, fields map[string]interface{}, cond Precondition) (map[string]types.AttributeValue, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("update: no fields supplied")
	}

	update := expression.UpdateBuilder{}
	for name, value := range fields {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	builder := expression.NewBuilder().WithUpdate(update)
	switch cond {
	case MustExist:
		builder = builder.WithCondition(
			expression.AttributeExists(expression.Name("pk")).And(
				expression.AttributeExists(expression.Name("sk"))))
	case MustNotExist:
		builder = builder.WithCondition(
			expression.AttributeNotExists(expression.Name("pk")).And(
				expression.AttributeNotExists(expression.Name("sk"))))
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("update: build expression: %w", err)
	}

	out, err := t.client.UpdateItem(ctx, &awsdynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       keyAttributes(key),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, t.translate("update", err)
	}
	return out.Attributes, nil
}

// Delete removes the record at the key and returns it as it was stored.
func (t *Table) Delete(ctx context.Context, key schema.Key, cond Precondition) (map[string]types.AttributeValue, error) {
	input := &awsdynamodb.DeleteItemInput{
		TableName:    aws.String(t.name),
		Key:          keyAttributes(key),
		ReturnValues: types.ReturnValueAllOld,
	}
	if cond == MustExist {
		input.ConditionExpression = aws.String("attribute_exists(pk) AND attribute_exists(sk)")
	}

	out, err := t.client.DeleteItem(ctx, input)
	if err != nil {
		return nil, t.translate("delete", err)
	}
	if len(out.Attributes) == 0 {
		return nil, ErrItemNotFound
	}
	return out.Attributes, nil
}

// QueryPrefix returns every record in the partition whose sort key begins
// with the prefix, following pagination until the range is exhausted.
// Store-native order, no guarantee beyond the sort key.
func (t *Table) QueryPrefix(ctx context.Context, prefix schema.Prefix) ([]map[string]types.AttributeValue, error) {
	keyCond := expression.Key("pk").Equal(expression.Value(prefix.PK)).
		And(expression.Key("sk").BeginsWith(prefix.SKPrefix))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("query: build expression: %w", err)
	}

	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := t.client.Query(ctx, &awsdynamodb.QueryInput{
			TableName:                 aws.String(t.name),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, t.translate("query", err)
		}
		items = append(items, out.Items...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// translate maps SDK failures onto the gateway's sentinels.
func (t *Table) translate(operation string, err error) error {
	var conditionalCheckFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionalCheckFailed) {
		return ErrConditionFailed
	}

	t.logger.Error("DynamoDB operation failed",
		zap.String("operation", operation),
		zap.String("table", t.name),
		zap.Error(err),
	)
	return fmt.Errorf("%s: %w", operation, err)
}
