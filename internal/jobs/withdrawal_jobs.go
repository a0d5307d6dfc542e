package jobs

import (
	"context"
	"time"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
)

// ExpireStaleWithdrawalRequests rejects pending withdrawal requests older
// than the configured TTL so they do not linger unreviewed forever.
func (jr *JobRunner) ExpireStaleWithdrawalRequests() {
	jr.runWithRecovery("ExpireStaleWithdrawalRequests", func() {
		ctx := context.Background()
		ttl := time.Duration(jr.config.Jobs.WithdrawalRequestTTLDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-ttl)

		requests, err := jr.store.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale withdrawal requests", "error", err)
			return
		}

		count := 0
		for i := range requests {
			req := &requests[i]
			now := time.Now().UTC()
			req.Status = domain.WithdrawalStatusRejected
			req.ResolvedOn = &now
			if err := jr.store.WithdrawalRepository.Update(ctx, req); err != nil {
				logger.Error("Failed to expire withdrawal request", "request_id", req.ID, "error", err)
				continue
			}
			if err := jr.services.Notify.Notify(ctx, req.UserID, "Withdrawal request expired",
				"Your withdrawal request of R"+req.Amount.StringFixed(2)+" was not reviewed in time and has been closed. Please submit a new request.",
				map[string]string{"request_id": req.ID}); err != nil {
				logger.Error("Failed to create expiry notification", "request_id", req.ID, "error", err)
			}
			count++
		}
		logger.Info("Stale withdrawal requests expired", "count", count)
	})
}
