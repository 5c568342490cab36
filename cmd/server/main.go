package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cargoconnect/logistics-api/internal/api"
	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/service"
	mongodb "github.com/cargoconnect/logistics-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cargoconnect/logistics-api/internal/infrastructure/db/redis"
	"github.com/cargoconnect/logistics-api/internal/infrastructure/mail"
	"github.com/cargoconnect/logistics-api/internal/infrastructure/queue"
	"github.com/cargoconnect/logistics-api/internal/pkg/config"
	"github.com/cargoconnect/logistics-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Datastores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	shipmentRepo := mongodb.NewShipmentRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	if err := shipmentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create shipment indexes")
	}
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	if err := seedAdmin(ctx, authRepo, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin identity")
	}

	// --- Notification path ---
	sender := mail.NewWebhookSender(cfg.Notify.WebhookURL, cfg.Notify.Timeout)
	dedup := redisdb.NewDedupChecker(rdb)
	notificationService := service.NewNotificationService(dedup, sender, log)
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, notificationService, log)
	dispatcher.Start(ctx)

	// --- Use cases & HTTP ---
	shipmentService := service.NewShipmentService(shipmentRepo, dispatcher, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(db, rdb, shipmentService, authService, api.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		ReceiptBaseURL: cfg.ReceiptBaseURL,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// seedAdmin ensures the configured admin identity exists. Existing identities
// are left untouched; runtime traffic never mutates the user store.
func seedAdmin(ctx context.Context, repo *mongodb.AuthRepository, cfg config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	if _, err := repo.FindByUsername(ctx, cfg.Username); err == nil {
		return nil
	}

	hash, err := service.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Username:     cfg.Username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
