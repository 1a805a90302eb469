package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"motel-admin-backend/internal/config"
	"motel-admin-backend/internal/db"
	"motel-admin-backend/internal/logger"
)

func main() {
	logger.Init()

	if len(os.Args) < 2 {
		log.Fatal().Msg("migration direction (up/down/drop) is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	switch os.Args[1] {
	case "up":
		err = db.MigrateUp(cfg.DBDSN)
	case "down":
		err = db.MigrateDown(cfg.DBDSN)
	case "drop":
		err = db.MigrateDrop(cfg.DBDSN)
	default:
		log.Fatal().Msg("invalid direction, use 'up', 'down' or 'drop'")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
