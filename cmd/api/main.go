package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kontribo-backend/config"
	"kontribo-backend/internal/adapter/gateway/xendit"
	httpHandler "kontribo-backend/internal/adapter/http/handler"
	pgStorage "kontribo-backend/internal/adapter/storage/postgres"
	redisStorage "kontribo-backend/internal/adapter/storage/redis"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/internal/service"
	"kontribo-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Kontribo backend")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	supportRepo := pgStorage.NewSupportRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	contributorRepo := pgStorage.NewContributorRepo(pool)
	destinationRepo := pgStorage.NewDestinationRepo(pool)
	webhookRepo := pgStorage.NewWebhookEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	dedupCache := redisStorage.NewWebhookDedupCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize gateway client
	if cfg.Gateway.SecretKey == "" || cfg.Gateway.CallbackToken == "" {
		log.Fatal().Msg("Gateway credentials are not configured")
	}
	gatewayClient := xendit.NewClient(cfg.Gateway, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ledgerSvc := service.NewLedgerService(ledgerRepo, log)
	supportSvc := service.NewSupportService(supportRepo, contributorRepo, ledgerSvc, gatewayClient, transactor, cfg.Payout, log)
	withdrawalSvc := service.NewWithdrawalService(
		withdrawalRepo,
		contributorRepo,
		destinationRepo,
		ledgerRepo,
		ledgerSvc,
		gatewayClient,
		transactor,
		cfg.Payout,
		log,
	)
	webhookSvc := service.NewWebhookService(webhookRepo, dedupCache, supportSvc, withdrawalSvc, cfg.Gateway.CallbackToken, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SupportSvc:     supportSvc,
		WithdrawalSvc:  withdrawalSvc,
		WebhookSvc:     webhookSvc,
		LedgerSvc:      ledgerSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Currency:       cfg.Payout.Currency,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
