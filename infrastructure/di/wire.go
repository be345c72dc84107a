//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"candyshop-backend/infrastructure/config"
	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/interfaces/http/rest"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	UserRepo    abstractions.UserRepository
	ProductRepo abstractions.ProductRepository
	CartRepo    abstractions.CartRepository
	Router      *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideTable,
	ProvideUserRepository,
	ProvideProductRepository,
	ProvideCartRepository,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
