package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/database"
	"github.com/ShyneADL/recipe-app/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	waitCtx, cancelWait := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.WaitForDatabase(waitCtx, cfg); err != nil {
		cancelWait()
		log.Fatalf("Database not available: %v", err)
	}
	cancelWait()

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	opts := server.Options{}

	// Redis is optional: without it the catalog snapshot and rate
	// limiting are skipped, not the whole service.
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, continuing without snapshot/rate limits: %v", err)
	} else {
		opts.Redis = redisClient
	}

	if s3cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, profile picture upload disabled: %v", err)
	} else {
		opts.S3 = s3cfg
	}

	srv, err := server.New(cfg, db, opts)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
