package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/example/secureshop/internal/api"
	"github.com/example/secureshop/internal/cart"
	"github.com/example/secureshop/internal/checkout"
	"github.com/example/secureshop/internal/config"
	"github.com/example/secureshop/internal/dispatch"
	"github.com/example/secureshop/internal/email"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] Failed to load configuration: %v", err)
	}

	log.Println("[API] ========================================")
	log.Println("[API] SecureShop - Storefront API")
	log.Println("[API] ========================================")
	log.Printf("[API] Owner email: %s", cfg.OwnerEmail)
	log.Printf("[API] Email endpoint: %s", cfg.EmailEndpoint)
	if cfg.SendGridAPIKey != "" {
		log.Println("[API] SendGrid configured")
	} else {
		log.Println("[API] SENDGRID_API_KEY not set, provider tier disabled")
	}

	// Cart persistence: Redis when configured, local JSON file otherwise.
	var store cart.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("[API] Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		cancel()
		defer client.Close()
		store = cart.NewRedisStore(client)
		log.Printf("[API] Cart store: Redis (%s)", cfg.RedisAddr)
	} else {
		store = cart.NewFileStore(cfg.CartFile)
		log.Printf("[API] Cart store: file (%s)", cfg.CartFile)
	}

	carts := cart.NewManager(store)
	sender := email.NewService(cfg.SendGridAPIKey)
	dispatcher := dispatch.NewDispatcher(
		dispatch.NewRemoteTier(cfg.EmailEndpoint),
		dispatch.NewProviderTier(sender),
		dispatch.SimulationTier{},
	)
	checkoutSvc := checkout.NewService(cfg, carts, dispatcher)

	handlers := api.NewHandlers(carts, checkoutSvc)
	router := api.NewRouter(handlers)

	server := &http.Server{
		Addr:    cfg.APIAddr,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Server started on %s", cfg.APIAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}
