package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tmackenzie/chorekeeper/internal/database"
	"github.com/tmackenzie/chorekeeper/internal/logging"
	"github.com/tmackenzie/chorekeeper/internal/push"
	"github.com/tmackenzie/chorekeeper/internal/scheduler"
	"github.com/tmackenzie/chorekeeper/internal/server"
	"github.com/tmackenzie/chorekeeper/internal/store"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	port := env("CHOREKEEPER_PORT", "8080")
	dbPath := env("CHOREKEEPER_DB_PATH", "chorekeeper.db")

	logger := logging.Setup(env("CHOREKEEPER_LOG_LEVEL", "info"), env("CHOREKEEPER_LOG_FORMAT", "text"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	settings := store.NewSettingsStore(db)

	// VAPID keys come from the environment when provided; otherwise a
	// pair is generated once and persisted so subscriptions survive
	// restarts.
	vapidPub := os.Getenv("CHOREKEEPER_VAPID_PUBLIC_KEY")
	vapidPriv := os.Getenv("CHOREKEEPER_VAPID_PRIVATE_KEY")
	if vapidPub == "" || vapidPriv == "" {
		vapidPub, _ = settings.Get(store.SettingVAPIDPublicKey)
		vapidPriv, _ = settings.Get(store.SettingVAPIDPrivateKey)
	}
	if vapidPub == "" || vapidPriv == "" {
		vapidPub, vapidPriv, err = push.GenerateVAPIDKeys()
		if err != nil {
			logger.Error("generate VAPID keys, push disabled", "error", err)
			vapidPub, vapidPriv = "", ""
		} else {
			if err := settings.Set(store.SettingVAPIDPublicKey, vapidPub); err != nil {
				log.Fatalf("failed to persist VAPID key: %v", err)
			}
			if err := settings.Set(store.SettingVAPIDPrivateKey, vapidPriv); err != nil {
				log.Fatalf("failed to persist VAPID key: %v", err)
			}
			logger.Info("generated VAPID key pair")
		}
	}

	srv := server.New(db, server.Config{
		VAPIDPublicKey:  vapidPub,
		VAPIDPrivateKey: vapidPriv,
	}, logger)

	if err := srv.Service().SeedDefaultRewards(); err != nil {
		log.Fatalf("failed to seed rewards: %v", err)
	}

	sched, err := scheduler.New(srv.Service(), logger.With("component", "scheduler"))
	if err != nil {
		log.Fatalf("failed to create scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	// Periodic cleanup of stale rate-limit buckets.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			case <-cleanupDone:
				return
			}
		}
	}()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("chorekeeper running", "addr", "http://localhost:"+port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	close(cleanupDone)
	if err := sched.Stop(); err != nil {
		logger.Error("scheduler shutdown", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
