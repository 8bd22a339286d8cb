package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/cookmate/backend/config"
	"github.com/cookmate/backend/internal/database"
	"github.com/cookmate/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.MigrationsDir = *dir
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

	if *rollback {
		name, err := database.Rollback(db, cfg.MigrationsDir, logger)
		if err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
		logger.Info("rollback complete", zap.String("migration", name))
		return
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migrations complete")
}
