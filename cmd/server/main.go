package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "stokvel-backend/internal/api/http"
	"stokvel-backend/internal/auth"
	"stokvel-backend/internal/config"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository/firestore"
	"stokvel-backend/internal/security"
	"stokvel-backend/internal/service"
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
	logger.Info("Starting Stokvel Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID)

	ctx := context.Background()

	// Initialize Auth Provider
	provider, err := auth.NewFirebaseProvider(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile, cfg.Firebase.WebAPIKey)
	if err != nil {
		logger.Error("Failed to initialize auth provider", "error", err)
		log.Fatalf("Failed to initialize auth provider: %v", err)
	}
	logger.Info("Auth provider initialized")

	// Initialize Firestore
	client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID)
	if err != nil {
		logger.Error("Failed to connect to firestore", "error", err)
		log.Fatalf("Failed to connect to firestore: %v", err)
	}
	store := firestore.NewStore(client)
	defer store.Close()
	logger.Info("Firestore connection established")

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	authSvc := service.NewAuthService(provider, store.UserRepository, store.ReferralRepository, tokenManager, emailSvc)
	userSvc := service.NewUserService(store.UserRepository)
	referralSvc := service.NewReferralService(store.ReferralRepository, noteSvc)
	loanSvc := service.NewLoanService(store.LoanRepository, store.UserRepository, referralSvc, noteSvc, emailSvc)
	stokvelSvc := service.NewStokvelService(store.StokvelRepository, store.WithdrawalRepository, noteSvc)
	funeralSvc := service.NewFuneralService(store.FuneralRepository)
	storeSvc := service.NewStoreService(store.ProductRepository, store.OrderRepository, stokvelSvc, funeralSvc)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Tokens:        tokenManager,
		Auth:          authSvc,
		Users:         userSvc,
		Loans:         loanSvc,
		Stokvels:      stokvelSvc,
		Funerals:      funeralSvc,
		Store:         storeSvc,
		Referrals:     referralSvc,
		Notifications: noteSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
