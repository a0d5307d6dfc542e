package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stokvel-backend/internal/config"
	"stokvel-backend/internal/jobs"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository/firestore"
	"stokvel-backend/internal/scheduler"
	"stokvel-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-contribution-reminders', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Stokvel Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Firestore
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID)
	if err != nil {
		logger.Error("Failed to connect to firestore", "error", err)
		log.Fatalf("Failed to connect to firestore: %v", err)
	}
	store := firestore.NewStore(client)
	defer store.Close()
	logger.Info("Firestore connection established")

	// Initialize Services
	emailService := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	notifyService := service.NewNotificationService(store.NotificationRepository)

	jobServices := &jobs.Services{
		Email:  emailService,
		Notify: notifyService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-contribution-reminders":
		jobRunner.SendContributionReminders()
	case "send-loan-payment-reminders":
		jobRunner.SendLoanPaymentReminders()
	case "expire-withdrawal-requests":
		jobRunner.ExpireStaleWithdrawalRequests()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-contribution-reminders\n")
		fmt.Printf("  - send-loan-payment-reminders\n")
		fmt.Printf("  - expire-withdrawal-requests\n")
		fmt.Printf("  - all-daily\n")
	}
}
