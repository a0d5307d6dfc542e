package jobs

import (
	"context"
	"time"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
)

// SendContributionReminders emails members whose next stokvel contribution
// falls inside the configured reminder window.
func (jr *JobRunner) SendContributionReminders() {
	jr.runWithRecovery("SendContributionReminders", func() {
		ctx := context.Background()
		window := time.Duration(jr.config.Jobs.ContributionReminderDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(window)

		memberships, err := jr.store.ListContributionsDue(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list memberships due for contribution", "error", err)
			return
		}

		count := 0
		for i := range memberships {
			m := &memberships[i]
			user, err := jr.store.UserRepository.GetByID(ctx, m.UserID)
			if err != nil {
				logger.Error("Failed to load member for reminder", "membership_id", m.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendContributionReminder(ctx, user.Email, user.DisplayName, m); err != nil {
				logger.Error("Failed to send contribution reminder", "membership_id", m.ID, "error", err)
				continue
			}
			if err := jr.services.Notify.Notify(ctx, m.UserID, "Contribution due",
				"Your stokvel contribution of R"+m.MonthlyContribution.StringFixed(2)+" is due on "+m.NextContributionDate.Format("2006-01-02")+".",
				map[string]string{"membership_id": m.ID}); err != nil {
				logger.Error("Failed to create reminder notification", "membership_id", m.ID, "error", err)
			}
			count++
		}
		logger.Info("Contribution reminders sent", "count", count)
	})
}

// SendLoanPaymentReminders emails borrowers with approved loans that still
// carry an outstanding balance.
func (jr *JobRunner) SendLoanPaymentReminders() {
	jr.runWithRecovery("SendLoanPaymentReminders", func() {
		ctx := context.Background()

		loans, err := jr.store.ListByStatus(ctx, domain.LoanStatusApproved)
		if err != nil {
			logger.Error("Failed to list approved loans", "error", err)
			return
		}

		count := 0
		for i := range loans {
			loan := &loans[i]
			if !loan.RemainingBalance.IsPositive() {
				continue
			}
			user, err := jr.store.UserRepository.GetByID(ctx, loan.UserID)
			if err != nil {
				logger.Error("Failed to load borrower for reminder", "loan_id", loan.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendLoanPaymentReminder(ctx, user.Email, user.DisplayName, loan); err != nil {
				logger.Error("Failed to send loan payment reminder", "loan_id", loan.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Loan payment reminders sent", "count", count)
	})
}
