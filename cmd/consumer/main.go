package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vetrivel962969-dotcom/Paperid/internal/app"
	"go.uber.org/zap"
)

// consumer simulates the warehouse: it ships every placed order after
// FULFILMENT_SHIP_DELAY by publishing a status update back to the api.
func main() {
	_ = godotenv.Load()
	cfg := app.LoadConfig()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.KafkaBroker == "" {
		logger.Fatal("KAFKA_BROKER is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting fulfilment consumer")
	if err := app.RunFulfilment(ctx, cfg, logger); err != nil {
		logger.Fatal("fulfilment stopped with error", zap.Error(err))
	}
	logger.Info("fulfilment consumer stopped")
}
