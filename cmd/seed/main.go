package main

import (
	"context"
	"flag"

	"github.com/safar/go-food-store/internal/config"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/logger"
	"github.com/safar/go-food-store/internal/seed"
	"go.uber.org/zap"
)

func main() {
	recategorize := flag.Bool("recategorize", false, "move products from legacy per-product categories into menu sections")
	resetPassword := flag.Bool("reset-admin-password", false, "overwrite the admin password with ADMIN_PASSWORD")
	skipMenu := flag.Bool("skip-menu", false, "do not seed the default menu")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer log.Sync()

	ctx := context.Background()
	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *resetPassword {
		if err := seed.ResetAdminPassword(ctx, db, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal("Failed to reset admin password", zap.Error(err))
		}
		log.Info("Admin password reset", zap.String("username", cfg.Admin.Username))
	} else if _, err := seed.EnsureAdmin(ctx, db, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
		log.Fatal("Failed to ensure admin user", zap.Error(err))
	}

	if !*skipMenu {
		if _, err := seed.Menu(ctx, db, log); err != nil {
			log.Fatal("Failed to seed menu", zap.Error(err))
		}
	}

	if *recategorize {
		n, err := seed.Recategorize(ctx, db, log)
		if err != nil {
			log.Fatal("Failed to update categories", zap.Error(err))
		}
		log.Info("Product categories updated", zap.Int64("products", n))
	}
}
