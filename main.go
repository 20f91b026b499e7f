// main.go
package main

import (
	"context"
	"log"

	"cinema-inventory/cmd"
	"cinema-inventory/internal/data/fixtures"
	"cinema-inventory/internal/data/repository"
	"cinema-inventory/internal/wire"
	"cinema-inventory/migrations"
	"cinema-inventory/pkg/database"
	"cinema-inventory/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Initialize the selected store
	var repos *repository.Repository
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := migrations.Apply(ctx, db.Pool()); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}

		logger.Info("Database connected successfully")
		repos = repository.NewPostgresRepository(db, logger)

	case "memory":
		repos = repository.NewMemoryRepository(logger)

	default:
		logger.Fatal("Unknown store driver", zap.String("driver", config.Store.Driver))
	}

	// Seed demo catalog data
	if config.Store.SeedFixtures {
		if err := fixtures.Seed(ctx, repos, logger); err != nil {
			logger.Fatal("Failed to seed fixtures", zap.Error(err))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
