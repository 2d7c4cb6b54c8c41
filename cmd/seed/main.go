package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/config"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/seed"
)

func main() {

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Failed to connect to the database", slog.Any("error", err))
		os.Exit(1)
	}
	defer repos.Close()

	if err := seed.Apply(context.Background(), repos.DB); err != nil {
		slog.Error("Failed to seed the catalog", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Seed applied")
}
