package main

import (
	"fmt"
	"log"
	"os"
	_ "time/tzdata"

	"venue-booking/cmd"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/view"
	"venue-booking/internal/wire"
	"venue-booking/pkg/database"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

const usage = `usage:
  venue-booking                 start the web server
  venue-booking migrate up|down apply or revert database migrations`

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

	if err := utils.SetTimezone(config.App.Timezone); err != nil {
		logger.Fatal("Invalid APP_TIMEZONE", zap.Error(err))
	}

	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1:], config, logger); err != nil {
			logger.Fatal("Command failed", zap.Error(err))
		}
		return
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("timezone", utils.DisplayLocation().String()),
	)

	if config.Database.AutoMigrate {
		if err := database.Migrate(config.Database, database.MigrateUp, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	renderer, err := view.NewRenderer(logger)
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, renderer, logger)

	if err := cmd.HTTPServer(app.Router, config.App, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}

func runCommand(args []string, config *utils.Config, logger *zap.Logger) error {
	if args[0] != "migrate" || len(args) != 2 {
		return fmt.Errorf("unknown command %q\n%s", args, usage)
	}
	return database.Migrate(config.Database, args[1], logger)
}
