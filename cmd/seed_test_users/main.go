package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/cookmate/backend/config"
	"github.com/cookmate/backend/internal/database"
	"github.com/cookmate/backend/internal/logging"
	"github.com/cookmate/backend/internal/seed"
	"github.com/cookmate/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if config.IsProduction() {
		log.Fatal("Refusing to create demo users in production")
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.MigrationsDir, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL, logger)
	n, err := seed.LoadDemoUsers(context.Background(), auth, logger)
	if err != nil {
		logger.Fatal("failed to create demo users", zap.Error(err))
	}
	logger.Info("demo users ready", zap.Int("created", n), zap.String("password", seed.DemoPassword))
}
