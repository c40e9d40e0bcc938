package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"parimutuel-engine/internal/cache"
	"parimutuel-engine/internal/config"
	"parimutuel-engine/internal/database"
	"parimutuel-engine/internal/handler"
	"parimutuel-engine/internal/logger"
	"parimutuel-engine/internal/notify"
	"parimutuel-engine/internal/repository"
	"parimutuel-engine/internal/repository/postgres"
	"parimutuel-engine/internal/service"
	"parimutuel-engine/internal/worker"
	"syscall"
	"time"

	_ "parimutuel-engine/docs"

	"golang.org/x/sync/errgroup"
)

// @title Parimutuel Settlement Engine API
// @version 1.0
// @description Binary-outcome parimutuel markets: stakes, odds, resolution and the balance ledger
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New(true, "")
		boot.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(dbCtx, dbPool, log); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	marketRepo := postgres.NewMarketRepository(dbPool)
	stakeRepo := postgres.NewStakeRepository(dbPool)
	eventRepo := postgres.NewEventRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Optional Redis: cached market reads for the display path and the resolution lock
	var (
		displayMarkets repository.MarketRepository = marketRepo
		invalidator    notify.MarketInvalidator
		locker         service.Locker
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.New(dbCtx, cache.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		cached := cache.NewCachedMarketRepository(marketRepo, redisClient, cfg.Redis.CacheTTL, log)
		displayMarkets = cached
		invalidator = cached
		locker = cache.NewLockManager(redisClient)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache and lock enabled")
	}

	// Post-commit fan-out and operator alerts
	hub := notify.NewHub(log)
	fanout := notify.NewMarketFanout(invalidator, hub, log)
	alerter := notify.NewLogAlerter(log)

	// Services
	marketService := service.NewMarketService(displayMarkets, eventRepo, txManager, fanout, service.MarketSettings{
		DefaultFeeBps: cfg.Market.DefaultFeeBps,
		MaxFeeBps:     cfg.Market.MaxFeeBps,
	}, log)
	stakeService := service.NewStakeService(userRepo, ledgerRepo, marketRepo, stakeRepo, eventRepo, txManager, fanout, log)
	resolutionService := service.NewResolutionService(userRepo, ledgerRepo, marketRepo, stakeRepo, eventRepo, txManager,
		fanout, alerter, locker, service.ResolutionSettings{
			LockTTL:           cfg.Redis.LockTTL,
			RecoveryBatchSize: cfg.Worker.RecoveryBatchSize,
		}, log)
	ledgerService := service.NewLedgerService(userRepo, ledgerRepo, txManager, log)
	reconciliationService := service.NewReconciliationService(marketRepo, eventRepo, txManager, fanout, alerter, log)
	auditService := service.NewAuditService(ledgerRepo, marketRepo, alerter, cfg.Worker.AuditLimit, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker finishing settlements interrupted by a crash
	recoveryWorker := worker.New("settlement-recovery", cfg.Worker.RecoveryInterval, resolutionService.RecoverPending, log, worker.RunOnStart())
	recoveryWorker.Start(ctx)
	defer recoveryWorker.Stop()

	// Worker checking ledger and pool conservation
	auditWorker := worker.New("conservation-audit", cfg.Worker.AuditInterval, func(ctx context.Context) error {
		_, err := auditService.RunAudit(ctx)
		return err
	}, log)
	auditWorker.Start(ctx)
	defer auditWorker.Stop()

	// http handler
	h := handler.NewHandler(handler.Services{
		Markets:        marketService,
		Stakes:         stakeService,
		Resolution:     resolutionService,
		Ledger:         ledgerService,
		Reconciliation: reconciliationService,
		Audit:          auditService,
	}, hub, cfg.Admin.Token, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return hub.Run(gctx)
	})

	g.Go(func() error {
		log.Info().Str("port", cfg.Server.Port).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Wait for shutdown signal
		<-gctx.Done()
		log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
			return err
		}
		log.Info().Msg("HTTP server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server exited with error")
	}

	log.Info().Msg("Shutdown complete")
}
