package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go-hotel-ordering/config"
	"go-hotel-ordering/helpers"
	"go-hotel-ordering/notify"
	"go-hotel-ordering/routes"
	"go-hotel-ordering/session"
	"go-hotel-ordering/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := helpers.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	if cfg.SecretKey == "" {
		cfg.SecretKey = uuid.NewString()
		logger.Warn("SECRET_KEY not set, admin tokens will not survive a restart")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := notify.NewHub(logger)
	registry := session.NewRegistry(cfg.SessionTTL, func(sessionID string) *store.OrderStore {
		opts := []store.Option{
			store.WithObserver(func(e store.Event) { hub.Publish(sessionID, e) }),
		}
		if cfg.SeedSampleMenu {
			opts = append(opts, store.WithMenu(store.SampleMenu()))
		}
		return store.New(opts...)
	}, logger)
	registry.OnEnd(hub.CloseSession)
	go registry.Run(ctx, cfg.SessionSweepInterval)

	auth, err := helpers.NewAdminAuth(cfg.AdminPassword, cfg.SecretKey, cfg.AdminTokenTTL)
	if err != nil {
		logger.Fatal("admin auth setup failed", zap.Error(err))
	}

	router := routes.NewRouter(cfg.AllowOrigins, routes.Dependencies{
		Registry:          registry,
		Hub:               hub,
		Auth:              auth,
		Logger:            logger,
		ServiceChargeRate: cfg.ServiceChargeRate,
		PingInterval:      cfg.WSPingInterval,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
