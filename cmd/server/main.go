package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pasteboard/internal/config"
	"pasteboard/internal/database"
	"pasteboard/internal/server"
)

func main() {
	// Optional .env overlay; absence is fine.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, db, log)
	srv.RegisterFiberRoutes()

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := srv.Listen(":" + cfg.Port); err != nil {
			log.Error("server stopped", "error", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.ShutdownWithContext(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	if err := db.Close(); err != nil {
		log.Error("error closing database", "error", err)
		os.Exit(1)
	}
	log.Info("database connection closed")
}
