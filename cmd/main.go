package main

import (
	"log"

	"github.com/jyotsna-57/fitnesstracker/config"
	"github.com/jyotsna-57/fitnesstracker/routes"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	r := routes.SetupRouter(cfg, logger, db)
	logger.Infow("starting server", "port", cfg.ServerPort, "environment", cfg.Environment)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
