package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "drivesync-backend/internal/api/http"
	"drivesync-backend/internal/config"
	"drivesync-backend/internal/images"
	"drivesync-backend/internal/logger"
	"drivesync-backend/internal/repository/postgres"
	"drivesync-backend/internal/security"
	"drivesync-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting DriveSync Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenExpiry(), cfg.RefreshTokenExpiry())

	// Initialize Image Cache
	imageCache, err := images.NewCache(cfg.Images.CacheDir, cfg.ImageFetchTimeout())
	if err != nil {
		logger.Error("Failed to initialize image cache", "error", err)
		log.Fatalf("Failed to initialize image cache: %v", err)
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey == "" {
		logger.Info("SendGrid API key not set, email notifications disabled")
		emailSvc = service.NewNoopEmailService()
	} else {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	carSvc := service.NewCarService(store.CarRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.CarRepository,
		store.PaymentRepository,
		store.ChangeRequestRepository,
	)
	adminSvc := service.NewAdminService(
		store.ChangeRequestRepository,
		store.UserRepository,
		store.CarRepository,
		emailSvc,
	)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		DB:         db,
		Tokens:     tokenManager,
		AuthSvc:    authSvc,
		UserSvc:    userSvc,
		CarSvc:     carSvc,
		RentalSvc:  rentalSvc,
		AdminSvc:   adminSvc,
		ImageCache: imageCache,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
