package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
	"stokvel-backend/internal/utils"
)

type stokvelService struct {
	stokvelRepo    repository.StokvelRepository
	withdrawalRepo repository.WithdrawalRepository
	notify         NotificationService
}

func NewStokvelService(stokvelRepo repository.StokvelRepository, withdrawalRepo repository.WithdrawalRepository, notify NotificationService) StokvelService {
	return &stokvelService{
		stokvelRepo:    stokvelRepo,
		withdrawalRepo: withdrawalRepo,
		notify:         notify,
	}
}

func (s *stokvelService) ListStokvelTypes(ctx context.Context) []domain.StokvelTypeConfig {
	types := []domain.StokvelType{domain.StokvelTypeJanuary, domain.StokvelTypeGrocery, domain.StokvelTypePlanning}
	configs := make([]domain.StokvelTypeConfig, 0, len(types))
	for _, t := range types {
		if cfg, ok := utils.StokvelConfig(t); ok {
			configs = append(configs, cfg)
		}
	}
	return configs
}

func (s *stokvelService) Join(ctx context.Context, userID string, stokvelType domain.StokvelType, monthlyContribution decimal.Decimal) (*domain.StokvelMembership, error) {
	if monthlyContribution.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	cfg, ok := utils.StokvelConfig(stokvelType)
	if !ok {
		return nil, domain.ErrInvalidApplication
	}

	now := time.Now().UTC()
	start, end, err := utils.StokvelDates(stokvelType, now.Year(), now)
	if err != nil {
		return nil, err
	}

	m := &domain.StokvelMembership{
		UserID:               userID,
		StokvelType:          stokvelType,
		Balance:              decimal.Zero,
		MonthlyContribution:  monthlyContribution,
		ProjectedPayout:      utils.ProjectedPayout(monthlyContribution, cfg),
		StartDate:            start,
		EndDate:              end,
		NextContributionDate: utils.AddCalendarMonths(utils.DateOnly(now), 1),
		Status:               domain.MembershipStatusActive,
	}
	if err := s.stokvelRepo.CreateMembership(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *stokvelService) Contribute(ctx context.Context, userID, membershipID string, amount decimal.Decimal) (*domain.StokvelMembership, error) {
	m, err := s.getOwned(ctx, userID, membershipID)
	if err != nil {
		return nil, err
	}
	if m.Status != domain.MembershipStatusActive {
		return nil, domain.ErrInvalidState
	}

	if err := utils.RecordContribution(m, amount, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.stokvelRepo.UpdateMembership(ctx, m); err != nil {
		return nil, err
	}

	if err := s.notify.Notify(ctx, userID, "Contribution received",
		"Your stokvel contribution of R"+amount.StringFixed(2)+" has been recorded.",
		map[string]string{"membership_id": m.ID}); err != nil {
		logger.ErrorContext(ctx, "failed to create contribution notification", "membership_id", m.ID, "error", err)
	}
	return m, nil
}

func (s *stokvelService) RequestWithdrawal(ctx context.Context, userID, membershipID string, amount decimal.Decimal) (*domain.WithdrawalRequest, error) {
	m, err := s.getOwned(ctx, userID, membershipID)
	if err != nil {
		return nil, err
	}
	cfg, ok := utils.StokvelConfig(m.StokvelType)
	if !ok {
		return nil, domain.ErrInvalidState
	}
	if err := utils.ValidateWithdrawal(cfg, m, amount); err != nil {
		return nil, err
	}

	req := &domain.WithdrawalRequest{
		MembershipID: m.ID,
		UserID:       userID,
		Amount:       amount,
		Status:       domain.WithdrawalStatusPending,
	}
	if err := s.withdrawalRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *stokvelService) ListMemberships(ctx context.Context, userID string) ([]domain.StokvelMembership, error) {
	return s.stokvelRepo.ListMembershipsByUser(ctx, userID)
}

func (s *stokvelService) GetMembership(ctx context.Context, userID, membershipID string) (*domain.StokvelMembership, error) {
	return s.getOwned(ctx, userID, membershipID)
}

func (s *stokvelService) CumulativeSavings(ctx context.Context, userID string) (decimal.Decimal, error) {
	memberships, err := s.stokvelRepo.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, m := range memberships {
		if m.Status == domain.MembershipStatusActive {
			total = total.Add(m.Balance)
		}
	}
	return total, nil
}

func (s *stokvelService) getOwned(ctx context.Context, userID, membershipID string) (*domain.StokvelMembership, error) {
	m, err := s.stokvelRepo.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return m, nil
}
