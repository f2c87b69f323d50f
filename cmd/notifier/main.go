package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/secureshop/internal/config"
	"github.com/example/secureshop/internal/email"
	"github.com/example/secureshop/internal/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Notifier] Failed to load configuration: %v", err)
	}

	log.Println("[Notifier] ========================================")
	log.Println("[Notifier] SecureShop - Email Notification Server")
	log.Println("[Notifier] ========================================")
	log.Printf("[Notifier] Owner email: %s", cfg.OwnerEmail)
	log.Printf("[Notifier] From: %s <%s>", cfg.FromName, cfg.FromEmail)
	if cfg.SendGridAPIKey != "" {
		log.Println("[Notifier] SendGrid configured successfully")
	} else {
		log.Println("[Notifier] SENDGRID_API_KEY not set, email notifications will be simulated")
	}

	sender := email.NewService(cfg.SendGridAPIKey)
	handler := notification.NewHandler(cfg, sender)
	router := notification.NewRouter(handler)

	server := &http.Server{
		Addr:    cfg.NotifierAddr,
		Handler: router,
	}

	go func() {
		log.Printf("[Notifier] Email notification server running at %s", cfg.NotifierAddr)
		log.Println("[Notifier] Ready to send order notifications to website owner")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[Notifier] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Notifier] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}
