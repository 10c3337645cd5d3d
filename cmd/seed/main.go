package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopfront/internal/backend"
	"shopfront/internal/config"
	"shopfront/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	client, err := backend.New(cfg.BackendURL, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatal("init backend client", zap.Error(err))
	}

	if err := seed.Apply(context.Background(), client, logger); err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied")
}
