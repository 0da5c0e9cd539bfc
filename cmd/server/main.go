package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillseeker/internal/app"
	"skillseeker/internal/config"
	"skillseeker/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Sync()

	application, cleanup, err := app.Bootstrap(cfg, lg)
	if err != nil {
		lg.Error("failed to bootstrap app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			lg.Error("cleanup error", "error", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		lg.Error("invalid HTTP port", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("http server listening", "addr", addr, "app", cfg.App.AppName)
		errCh <- application.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		lg.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			lg.Error("shutdown error", "error", err)
		}
	}
}
