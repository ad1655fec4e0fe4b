package main

import (
	"context"
	"log"

	"payment-api/cmd"
	"payment-api/internal/data/repository"
	"payment-api/internal/data/schema"
	"payment-api/internal/wire"
	"payment-api/pkg/database"
	"payment-api/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		tables := schema.All()
		statements := make([]string, 0, len(tables))
		for _, t := range tables {
			statements = append(statements, t.CreateSQL())
		}
		if err := database.Migrate(context.Background(), db, statements...); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema is up to date", zap.Int("tables", len(tables)))
	}

	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
