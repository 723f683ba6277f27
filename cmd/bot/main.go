package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/retailops/shiftbot/api/routes"
	"github.com/retailops/shiftbot/internal/accounts"
	"github.com/retailops/shiftbot/internal/bot"
	"github.com/retailops/shiftbot/internal/orders"
	"github.com/retailops/shiftbot/internal/payroll"
	"github.com/retailops/shiftbot/internal/shifts"
	"github.com/retailops/shiftbot/internal/warnings"
	"github.com/retailops/shiftbot/pkg/chatapi"
	"github.com/retailops/shiftbot/pkg/config"
	"github.com/retailops/shiftbot/pkg/db"
	"github.com/retailops/shiftbot/pkg/logger"
	"github.com/retailops/shiftbot/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "bot"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "bot",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := dbClient.AutoMigrate(context.Background(), logg); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	accountsService, err := accounts.NewService(accounts.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts service", err)
		os.Exit(1)
	}
	warningsService, err := warnings.NewService(warnings.NewRepository(dbClient.DB()), accountsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create warnings service", err)
		os.Exit(1)
	}
	shiftsService, err := shifts.NewService(shifts.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create shifts service", err)
		os.Exit(1)
	}
	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	payrollService, err := payroll.NewService(payroll.NewRepository(dbClient.DB()), accountsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create payroll service", err)
		os.Exit(1)
	}

	sender, err := chatapi.NewClient(context.Background(), cfg.Chat, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create chat delivery client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	updateMetrics := metrics.NewUpdateMetrics(registry)

	router, err := bot.NewRouter(bot.RouterParams{
		Accounts:     accountsService,
		Warnings:     warningsService,
		Shifts:       shiftsService,
		Orders:       ordersService,
		Payroll:      payrollService,
		Sender:       sender,
		Notifier:     bot.NewNotifier(sender, logg, cfg.Bot.AdminIDs),
		Logger:       logg,
		Metrics:      updateMetrics,
		BotConfig:    cfg.Bot,
		MessageLimit: cfg.Chat.MessageLimit,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create update router", err)
		os.Exit(1)
	}

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting bot server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(logg, dbClient, router, registry),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		logg.Info(ctx, "shutting down")
		if err := server.Shutdown(context.Background()); err != nil {
			logg.Error(ctx, "server shutdown failed", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "bot server stopped unexpectedly", err)
		os.Exit(1)
	}
}
