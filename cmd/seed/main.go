// Command seed loads the static candy catalog into the configured table.
// It is the same best-effort loader exposed over POST /api/products/seed,
// packaged for one-shot use during environment setup.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"candyshop-backend/domain/catalog"
	"candyshop-backend/infrastructure/config"
	"candyshop-backend/infrastructure/di"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	summary, err := container.ProductRepo.Seed(ctx, catalog.Products())
	if err != nil {
		container.Logger.Fatal("Seed failed", zap.Error(err))
	}

	container.Logger.Info("Seed finished",
		zap.String("batchId", summary.BatchID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", len(summary.Failed)),
	)
	for _, failure := range summary.Failed {
		container.Logger.Warn("Seed item failed",
			zap.String("productId", failure.ProductID),
			zap.String("reason", failure.Reason),
		)
	}

	_ = container.Logger.Sync()
}
