package jobs

import (
	"stokvel-backend/internal/config"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository/firestore"
	"stokvel-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *firestore.Store
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email  service.EmailService
	Notify service.NotificationService
}

func NewJobRunner(store *firestore.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs every daily job in sequence (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendContributionReminders()
	jr.SendLoanPaymentReminders()
	jr.ExpireStaleWithdrawalRequests()
}
