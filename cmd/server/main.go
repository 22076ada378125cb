package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/api"
	"github.com/govipola/storefront/internal/client/catalog"
	"github.com/govipola/storefront/internal/client/delivery"
	"github.com/govipola/storefront/internal/client/orders"
	"github.com/govipola/storefront/internal/config"
	"github.com/govipola/storefront/internal/service"
	"github.com/govipola/storefront/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Remote service clients
	catalogClient := catalog.NewClient(cfg.Catalog, logger)
	orderClient := orders.NewClient(cfg.Orders, logger)
	deliveryClient := delivery.NewClient(cfg.Delivery, logger)

	journal := service.NewReconciliationJournal()

	// The real session provider lives in the auth layer; this resolver treats
	// any bearer token as a user session, with one configured admin token.
	roles := session.RoleResolverFunc(func(token string) (session.Role, bool) {
		if cfg.AdminToken != "" && token == cfg.AdminToken {
			return session.RoleAdmin, true
		}
		return session.RoleUser, true
	})

	registry := session.NewRegistry(roles, func() *service.CheckoutService {
		return service.NewCheckoutService(orderClient, deliveryClient, journal, logger)
	})

	router := api.NewRouter(cfg, catalogClient, registry, journal, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("storefront listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
