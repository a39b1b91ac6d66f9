package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/kafkabus"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := loadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(config, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (cmd.Config, error) {
	// A .env file is a development convenience; in production the
	// environment comes from the orchestrator.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		return cmd.Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return config, nil
}

func run(config cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(postgres.Open(config.PgDSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	notifier := kafkabus.NewKafkaNotifier(config.KafkaBrokers(), config.KafkaNotificationsTopic, logger)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Error("Failed to close notifier", "error", err)
		}
	}()

	root := cmd.NewCompositionRoot(gormDB, notifier, logger)

	jobManager, err := root.CreateJobManager()
	if err != nil {
		return fmt.Errorf("create jobs: %w", err)
	}
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	root.CreateHTTPServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
