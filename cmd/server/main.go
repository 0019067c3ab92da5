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

	"github.com/easybanking/backoffice/internal/config"
	"github.com/easybanking/backoffice/internal/db"
	"github.com/easybanking/backoffice/internal/domain"
	"github.com/easybanking/backoffice/internal/events"
	"github.com/easybanking/backoffice/internal/httpapi"
	"github.com/easybanking/backoffice/internal/rates"
)

func main() {
	// Load .env if present; environment variables win.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer pool.Close()
	log.Println("database connection pool initialized")

	accountRepo := db.NewBankAccountRepository(pool.Pool)
	transactionRepo := db.NewTransactionRepository(pool.Pool)
	userRepo := db.NewUserRepository(pool.Pool)
	txManager := db.NewTransactionManager(pool.Pool)

	bus := events.NewBus()

	if cfg.RabbitMQ.URL != "" {
		relay, err := events.NewRabbitMQRelay(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("failed to create RabbitMQ relay: %v", err)
		}
		defer relay.Close()
		bus.Subscribe(relay.Relay)
	}

	rateProvider := rates.NewStaticProvider()

	accountService := domain.NewAccountService(accountRepo, txManager, bus)
	transactionService := domain.NewTransactionService(accountRepo, transactionRepo, rateProvider, txManager, bus)
	userService := domain.NewUserService(userRepo)

	// Closing an account records the withdrawn balance as a cash withdrawal.
	bus.Subscribe(transactionService.OnBankAccountClosed)
	log.Println("domain services initialized")

	handler := httpapi.NewHandler(accountService, transactionService, userService)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("back-office HTTP server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
	log.Println("HTTP server stopped")
}
