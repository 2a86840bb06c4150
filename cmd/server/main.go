package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tiagodiogo/teya-tiny-ledger/internal/config"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/events/kafka"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/interfaces"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/ledger"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/server"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/storage/memory"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("event publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	store := memory.NewAccountStore()
	ledgerService := ledger.NewLedger(store, publisher, logger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	server.RegisterRoutes(app, server.NewHandler(ledgerService, logger))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
