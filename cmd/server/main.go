package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campdoc/campdoc-api/internal/auth"
	"github.com/campdoc/campdoc-api/internal/config"
	"github.com/campdoc/campdoc-api/internal/database"
	"github.com/campdoc/campdoc-api/internal/handlers"
	"github.com/campdoc/campdoc-api/internal/payments"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	store, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, store)
	userHandler := handlers.NewUserHandler(store, authHandler)
	campHandler := handlers.NewCampHandler(store)
	registrationHandler := handlers.NewRegistrationHandler(store, authHandler)
	paymentHandler := handlers.NewPaymentHandler(store, payments.NewStripeIntents(cfg.StripeSecretKey))

	// Initialize Router
	r := chi.NewRouter()
	handlers.RegisterRoutes(r, cfg, authHandler, userHandler, campHandler, registrationHandler, paymentHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("Store close: %v", err)
	}
}
