package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"easyplug-admin/config"
	_ "easyplug-admin/docs" // Swagger docs
	"easyplug-admin/internal/guard"
	"easyplug-admin/internal/httpserver"
	"easyplug-admin/internal/session"
	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// @title       EasyPlug Admin API
// @description Admin gateway for the EasyPlug local marketplace: inventory,
// @description subscriptions, seller accounts and the listing wizard.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EasyPlug Admin...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "EasyPlug API: %s", cfg.EasyPlug.BaseURL)

	// 3. Session store and upstream client
	store := session.NewStore(cfg.Session.TokenPath)
	api := easyplug.NewClient(cfg.EasyPlug.BaseURL, store, cfg.EasyPlug.Timeout)

	// 4. Route guard
	g := guard.New(store, api, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		API:   api,
		Store: store,
		Guard: g,

		GoogleClientID: cfg.Google.ClientID,
		RequestsPerMin: cfg.Limits.RequestsPerMin,

		SubscriptionsTTL: cfg.Cache.SubscriptionsTTL,
		ProfileTTL:       cfg.Cache.ProfileTTL,
		MetricsTTL:       cfg.Cache.MetricsTTL,
		WizardSessionTTL: cfg.Limits.WizardSessionTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
