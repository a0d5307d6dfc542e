package repository

import (
	"context"
	"time"

	"stokvel-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.LoanAccount) error
	GetByID(ctx context.Context, id string) (*domain.LoanAccount, error)
	Update(ctx context.Context, loan *domain.LoanAccount) error
	ListByUser(ctx context.Context, userID string) ([]domain.LoanAccount, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanAccount, error)
}

type StokvelRepository interface {
	CreateMembership(ctx context.Context, m *domain.StokvelMembership) error
	GetMembershipByID(ctx context.Context, id string) (*domain.StokvelMembership, error)
	UpdateMembership(ctx context.Context, m *domain.StokvelMembership) error
	ListMembershipsByUser(ctx context.Context, userID string) ([]domain.StokvelMembership, error)
	// ListContributionsDue returns active memberships whose next contribution
	// date falls on or before the given cutoff.
	ListContributionsDue(ctx context.Context, cutoff time.Time) ([]domain.StokvelMembership, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error)
	Update(ctx context.Context, req *domain.WithdrawalRequest) error
	ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.WithdrawalRequest, error)
}

type FuneralRepository interface {
	CreateMembership(ctx context.Context, m *domain.FuneralCoverMembership) error
	GetMembershipByID(ctx context.Context, id string) (*domain.FuneralCoverMembership, error)
	GetActiveByUser(ctx context.Context, userID string) (*domain.FuneralCoverMembership, error)
	UpdateMembership(ctx context.Context, m *domain.FuneralCoverMembership) error
	CreateClaim(ctx context.Context, claim *domain.FuneralClaim) error
	ListClaimsByUser(ctx context.Context, userID string) ([]domain.FuneralClaim, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type ReferralRepository interface {
	Create(ctx context.Context, ref *domain.Referral) error
	GetByReferredUser(ctx context.Context, referredUserID string) (*domain.Referral, error)
	Update(ctx context.Context, ref *domain.Referral) error
	ListByReferrer(ctx context.Context, referrerID string) ([]domain.Referral, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
