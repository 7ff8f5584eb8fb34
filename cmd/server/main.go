package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/breatheright/health-system/internal/api"
	"github.com/breatheright/health-system/internal/core/ports"
	"github.com/breatheright/health-system/internal/core/service"
	"github.com/breatheright/health-system/internal/infrastructure/config"
	"github.com/breatheright/health-system/internal/infrastructure/db/memory"
	mongodb "github.com/breatheright/health-system/internal/infrastructure/db/mongo"
	redisdb "github.com/breatheright/health-system/internal/infrastructure/db/redis"
	"github.com/breatheright/health-system/internal/infrastructure/db/seed"
	"github.com/breatheright/health-system/internal/infrastructure/queue"
	"github.com/breatheright/health-system/pkg/logger"
)

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	deps := api.Deps{Logger: logg}

	// --- Storage driver ---
	var (
		userRepo ports.UserRepository
		logRepo  ports.HealthLogRepository
	)
	switch cfg.StorageDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			logg.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		userRepo = mongodb.NewUserRepository(db)
		logRepo = mongodb.NewHealthLogRepository(db)
		deps.Mongo = db
	default:
		userRepo = memory.NewUserRepository()
		logRepo = memory.NewHealthLogRepository()
	}

	if err := seed.Users(ctx, userRepo); err != nil {
		logg.Fatal().Err(err).Msg("seeding users failed")
	}
	if err := seed.HealthLogs(ctx, logRepo); err != nil {
		logg.Fatal().Err(err).Msg("seeding health logs failed")
	}

	// --- Alert pipeline ---
	var dedup service.AlertDedup
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			logg.Fatal().Err(err).Msg("redis connect failed")
		}
		defer func() { _ = rdb.Close() }()
		dedup = redisdb.NewAlertDedup(rdb, cfg.AlertDedupTTL)
		deps.Redis = rdb
	} else {
		dedup = memory.NewAlertDedup(cfg.AlertDedupTTL)
	}

	alertRepo := memory.NewAlertRepository()
	alertService := service.NewAlertService(alertRepo, dedup, logg)
	dispatcher := queue.NewDispatcher(cfg.AlertWorkers, alertService, logg)
	dispatcher.Start(ctx)

	// --- Core services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	deps.Tokens = tokens
	deps.Auth = service.NewAuthService(userRepo, tokens, logg)
	deps.Users = service.NewUserService(userRepo)
	deps.HealthLogs = service.NewHealthLogService(logRepo, logg)
	deps.Alerts = dispatcher

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()
	logg.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
