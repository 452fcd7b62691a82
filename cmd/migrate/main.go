package main

import (
	"fmt"
	"os"

	"github.com/safar/go-food-store/internal/config"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|version]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer log.Sync()

	m, err := database.OpenMigrator(cfg.Database.URL, log)
	if err != nil {
		log.Fatal("Failed to open migrator", zap.Error(err))
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q, expected up, down or version\n", os.Args[1])
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
}
