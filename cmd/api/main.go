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

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/client"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/config"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/handler"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/server"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	purchasedBookRepo := repository.NewPurchasedBookRepository(db)
	cartRepo := repository.NewCartRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	bookService := service.NewBookService(bookRepo)
	userService := service.NewUserService(userRepo, bookRepo, purchasedBookRepo)
	cartService := service.NewCartService(bookRepo, cartRepo)
	purchaseService := service.NewPurchaseService(
		cfg.Bank,
		userRepo,
		bookRepo,
		purchaseRepo,
		purchasedBookRepo,
		cartRepo,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		server.Config{
			UploadsDir: cfg.UploadsDir,
			JWTSecret:  cfg.JWT.Secret,
		},
		handler.NewAuthHandler(authService),
		handler.NewBookHandler(bookService),
		handler.NewUserHandler(userService),
		handler.NewCartHandler(cartService),
		handler.NewPurchaseHandler(purchaseService, cfg.FrontendURL),
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
