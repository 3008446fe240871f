package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"FakeNewsTrainer/internal/app"
	"FakeNewsTrainer/internal/config"
	"FakeNewsTrainer/internal/logging"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		logger.Error("training job failed", "error", err)
		os.Exit(1)
	}

	logger.Info("training job complete", "model", cfg.Output.ModelName)
}
