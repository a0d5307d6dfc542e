package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/repository"
	"stokvel-backend/internal/utils"
)

// ErrCoverExists is returned when a member tries to activate a second
// concurrent funeral cover.
var ErrCoverExists = errors.New("an active funeral cover already exists")

type funeralService struct {
	funeralRepo repository.FuneralRepository
}

func NewFuneralService(funeralRepo repository.FuneralRepository) FuneralService {
	return &funeralService{funeralRepo: funeralRepo}
}

func (s *funeralService) ListPlans(ctx context.Context) []domain.FuneralPlan {
	ids := []domain.FuneralPlanID{domain.FuneralPlanBasic, domain.FuneralPlanFamily, domain.FuneralPlanExtended}
	plans := make([]domain.FuneralPlan, 0, len(ids))
	for _, id := range ids {
		if plan, ok := utils.FuneralPlanByID(id); ok {
			plans = append(plans, plan)
		}
	}
	return plans
}

func (s *funeralService) QuotePremium(ctx context.Context, planID domain.FuneralPlanID, additionalBenefits []string) (decimal.Decimal, error) {
	return utils.FuneralPremium(planID, additionalBenefits)
}

func (s *funeralService) Activate(ctx context.Context, userID string, planID domain.FuneralPlanID, additionalBenefits []string, family *domain.FamilyDetails) (*domain.FuneralCoverMembership, error) {
	if err := utils.ValidateActivation(planID, family); err != nil {
		return nil, err
	}
	premium, err := utils.FuneralPremium(planID, additionalBenefits)
	if err != nil {
		return nil, err
	}

	if _, err := s.funeralRepo.GetActiveByUser(ctx, userID); err == nil {
		return nil, ErrCoverExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	m := &domain.FuneralCoverMembership{
		UserID:             userID,
		PlanID:             planID,
		StartDate:          utils.DateOnly(time.Now().UTC()),
		AdditionalBenefits: additionalBenefits,
		MonthlyPremium:     premium,
		Family:             family,
		Status:             domain.CoverStatusActive,
	}
	if err := s.funeralRepo.CreateMembership(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *funeralService) Cancel(ctx context.Context, userID, membershipID string) error {
	m, err := s.funeralRepo.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return err
	}
	if m.UserID != userID {
		return domain.ErrNotFound
	}
	if m.Status != domain.CoverStatusActive {
		return domain.ErrInvalidState
	}
	m.Status = domain.CoverStatusCancelled
	return s.funeralRepo.UpdateMembership(ctx, m)
}

// SubmitClaim files the claim either way; claims inside the waiting period
// are recorded as rejected so the member has a trace of the attempt.
func (s *funeralService) SubmitClaim(ctx context.Context, userID, membershipID string, cause domain.CauseOfDeath, category domain.MemberCategory) (*domain.FuneralClaim, error) {
	m, err := s.funeralRepo.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, domain.ErrNotFound
	}

	claim := &domain.FuneralClaim{
		MembershipID:   m.ID,
		UserID:         userID,
		CauseOfDeath:   cause,
		MemberCategory: category,
		Status:         domain.ClaimStatusPending,
	}
	if !utils.IsClaimEligible(m, cause, time.Now().UTC()) {
		claim.Status = domain.ClaimStatusRejected
		claim.RejectionReason = "cover is still within the waiting period for this cause of death"
	}
	if err := s.funeralRepo.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *funeralService) GetActiveCover(ctx context.Context, userID string) (*domain.FuneralCoverMembership, error) {
	return s.funeralRepo.GetActiveByUser(ctx, userID)
}
