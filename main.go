// @title ThinkQuest Backend API
// @version 1.0
// @description Backend server for the ThinkQuest design thinking quest.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"thinkquest_backend/internal/app"
	"thinkquest_backend/internal/config"
	"thinkquest_backend/pkg/configwatcher"
	"thinkquest_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration complete, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(updated interface{}) {
		if newCfg, ok := updated.(*config.Config); ok {
			application.ApplyConfig(newCfg)
		}
	})

	application.Run()
}
