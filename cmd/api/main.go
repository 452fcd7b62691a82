package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/safar/go-food-store/internal/api"
	"github.com/safar/go-food-store/internal/auth"
	"github.com/safar/go-food-store/internal/config"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/logger"
	"github.com/safar/go-food-store/internal/metrics"
	"github.com/safar/go-food-store/internal/notify"
	"github.com/safar/go-food-store/internal/pricing"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer log.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := cfg.Admin.Validate(); err != nil {
		log.Fatal("Invalid admin configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.App.AutoMigrate {
		if err := migrateUp(cfg.Database.URL, log); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	log.Info("Connected to database")

	formatter, err := pricing.NewFormatter(cfg.Notify.Locale)
	if err != nil {
		log.Fatal("Invalid notification locale", zap.String("locale", cfg.Notify.Locale), zap.Error(err))
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notify.BotToken != "" {
		notifier = notify.NewTelegram(&http.Client{}, cfg.Notify.APIURL, cfg.Notify.BotToken, cfg.Notify.ChatID, formatter)
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN is not set, order notifications are disabled")
	}

	var m *metrics.Metrics
	if cfg.Server.MetricsEnabled {
		m = metrics.New()
		notifier = m.InstrumentNotifier(notifier)
	}
	dispatcher := notify.NewDispatcher(notifier, cfg.Notify.Timeout, log)

	tokens := auth.NewTokenIssuer(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)

	handler := api.NewHandler(db, dispatcher, tokens, m)
	router := api.NewRouter(handler, api.RouterConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		RequireToken: cfg.Admin.RequireToken,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-errCh:
		log.Error("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}

func migrateUp(databaseURL string, log *zap.Logger) error {
	m, err := database.OpenMigrator(databaseURL, log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
