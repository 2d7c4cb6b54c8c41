package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/config"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/queue"
	service "github.com/aaravmahajanofficial/online-bookstore-platform/internal/services"
	"github.com/aaravmahajanofficial/online-bookstore-platform/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Unlike the API, the worker is useless without the broker, so a failed
	// connect is fatal.
	rabbit := queue.NewRabbitMQ(&cfg.RabbitMQ)
	if err := rabbit.Connect(context.Background()); err != nil {
		slog.Error("❌ Failed to connect to RabbitMQ", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := rabbit.Close(); err != nil {
			slog.Error("⚠️ Error closing RabbitMQ connection", slog.String("error", err.Error()))
		}
	}()

	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	notificationService := service.NewNotificationService(emailService, cfg.SendGrid.FromName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-done
		slog.Warn("🛑 Shutdown signal received. Draining the consumer...")
		cancel()
	}()

	slog.Info("🚀 Email worker is starting...", slog.String("queue", cfg.RabbitMQ.Queue))

	if err := rabbit.Consume(ctx, notificationService.HandleMessage); err != nil && err != context.Canceled {
		slog.Error("❌ Consumer stopped with an error", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("✅ Email worker shut down gracefully.")
}
