package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unlock-service/internal/config"
	"unlock-service/internal/server"
)

func main() {
	// Load config (.env is optional)
	cfg := config.Load()

	// Start server
	srv := server.NewServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("📱 Unlock service HTTP server starting on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Println("🛑 Unlock service shutting down gracefully...")
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Unlock service shutdown error: %v", err)
		}
	case err := <-errCh:
		log.Fatalf("Unlock service failed: %v", err)
	}
}
