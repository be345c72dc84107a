package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"candyshop-backend/infrastructure/config"
	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/infrastructure/persistence/dynamodb"
	"candyshop-backend/interfaces/http/rest"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideTable creates the single-table gateway
func ProvideTable(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) *dynamodb.Table {
	return dynamodb.NewTable(client, cfg.DynamoDBTable, logger)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(table *dynamodb.Table, logger *zap.Logger) abstractions.UserRepository {
	return dynamodb.NewUserRepository(table, logger)
}

// ProvideProductRepository creates a product repository
func ProvideProductRepository(table *dynamodb.Table, logger *zap.Logger) abstractions.ProductRepository {
	return dynamodb.NewProductRepository(table, logger)
}

// ProvideCartRepository creates a cart repository
func ProvideCartRepository(table *dynamodb.Table, logger *zap.Logger) abstractions.CartRepository {
	return dynamodb.NewCartRepository(table, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	users abstractions.UserRepository,
	products abstractions.ProductRepository,
	cart abstractions.CartRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(users, products, cart, logger, cfg.EnableCORS)
}
