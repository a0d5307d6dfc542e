package service

import (
	"context"
	"errors"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
	"stokvel-backend/internal/utils"
)

type referralService struct {
	refRepo repository.ReferralRepository
	notify  NotificationService
}

func NewReferralService(refRepo repository.ReferralRepository, notify NotificationService) ReferralService {
	return &referralService{refRepo: refRepo, notify: notify}
}

func (s *referralService) ListReferrals(ctx context.Context, referrerID string) ([]domain.Referral, error) {
	return s.refRepo.ListByReferrer(ctx, referrerID)
}

// ActivateOnLoanApproval is a no-op when the borrower was not referred or
// the referral has already been activated by an earlier loan.
func (s *referralService) ActivateOnLoanApproval(ctx context.Context, loan *domain.LoanAccount) error {
	ref, err := s.refRepo.GetByReferredUser(ctx, loan.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if ref.Status != domain.ReferralStatusPending {
		return nil
	}

	commission, err := utils.ReferralCommission(loan.Principal)
	if err != nil {
		return err
	}

	ref.ReferredLoanID = loan.ID
	ref.ReferredLoanAmount = loan.Principal
	ref.Commission = commission
	ref.Status = domain.ReferralStatusActive
	if err := s.refRepo.Update(ctx, ref); err != nil {
		return err
	}

	if err := s.notify.Notify(ctx, ref.ReferrerID, "Referral bonus earned",
		"A member you referred took out their first loan. Your commission of R"+commission.StringFixed(2)+" is on its way.",
		map[string]string{"referral_id": ref.ID}); err != nil {
		logger.ErrorContext(ctx, "failed to create referral notification", "referral_id", ref.ID, "error", err)
	}
	return nil
}
