package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cookmate/backend/config"
	"github.com/cookmate/backend/internal/database"
	"github.com/cookmate/backend/internal/logging"
	"github.com/cookmate/backend/internal/seed"
	"github.com/cookmate/backend/internal/store"
)

func main() {
	file := flag.String("file", "AI/utils/updatedRecipe.csv", "Recipe CSV export")
	batch := flag.Int("batch", seed.DefaultBatchSize, "Rows per insert")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
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

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal("failed to open recipe file", zap.String("file", *file), zap.Error(err))
	}
	defer f.Close()

	n, err := seed.LoadRecipes(context.Background(), f, store.NewRecipeStore(db), *batch, logger)
	if err != nil {
		logger.Fatal("seeding failed", zap.Int("written", n), zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("recipes", n))
}
