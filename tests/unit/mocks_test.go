package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"stokvel-backend/internal/auth"
	"stokvel-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.LoanAccount) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id string) (*domain.LoanAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanAccount), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.LoanAccount) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) ListByUser(ctx context.Context, userID string) ([]domain.LoanAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.LoanAccount), args.Error(1)
}
func (m *MockLoanRepo) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanAccount, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.LoanAccount), args.Error(1)
}

// MockStokvelRepo
type MockStokvelRepo struct {
	mock.Mock
}

func (m *MockStokvelRepo) CreateMembership(ctx context.Context, ms *domain.StokvelMembership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}
func (m *MockStokvelRepo) GetMembershipByID(ctx context.Context, id string) (*domain.StokvelMembership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StokvelMembership), args.Error(1)
}
func (m *MockStokvelRepo) UpdateMembership(ctx context.Context, ms *domain.StokvelMembership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}
func (m *MockStokvelRepo) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.StokvelMembership, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.StokvelMembership), args.Error(1)
}
func (m *MockStokvelRepo) ListContributionsDue(ctx context.Context, cutoff time.Time) ([]domain.StokvelMembership, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.StokvelMembership), args.Error(1)
}

// MockWithdrawalRepo
type MockWithdrawalRepo struct {
	mock.Mock
}

func (m *MockWithdrawalRepo) Create(ctx context.Context, req *domain.WithdrawalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockWithdrawalRepo) GetByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}
func (m *MockWithdrawalRepo) Update(ctx context.Context, req *domain.WithdrawalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockWithdrawalRepo) ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.WithdrawalRequest), args.Error(1)
}
func (m *MockWithdrawalRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.WithdrawalRequest, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.WithdrawalRequest), args.Error(1)
}

// MockFuneralRepo
type MockFuneralRepo struct {
	mock.Mock
}

func (m *MockFuneralRepo) CreateMembership(ctx context.Context, ms *domain.FuneralCoverMembership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}
func (m *MockFuneralRepo) GetMembershipByID(ctx context.Context, id string) (*domain.FuneralCoverMembership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FuneralCoverMembership), args.Error(1)
}
func (m *MockFuneralRepo) GetActiveByUser(ctx context.Context, userID string) (*domain.FuneralCoverMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FuneralCoverMembership), args.Error(1)
}
func (m *MockFuneralRepo) UpdateMembership(ctx context.Context, ms *domain.FuneralCoverMembership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}
func (m *MockFuneralRepo) CreateClaim(ctx context.Context, claim *domain.FuneralClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}
func (m *MockFuneralRepo) ListClaimsByUser(ctx context.Context, userID string) ([]domain.FuneralClaim, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FuneralClaim), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockReferralRepo
type MockReferralRepo struct {
	mock.Mock
}

func (m *MockReferralRepo) Create(ctx context.Context, ref *domain.Referral) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
func (m *MockReferralRepo) GetByReferredUser(ctx context.Context, referredUserID string) (*domain.Referral, error) {
	args := m.Called(ctx, referredUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Referral), args.Error(1)
}
func (m *MockReferralRepo) Update(ctx context.Context, ref *domain.Referral) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
func (m *MockReferralRepo) ListByReferrer(ctx context.Context, referrerID string) ([]domain.Referral, error) {
	args := m.Called(ctx, referrerID)
	return args.Get(0).([]domain.Referral), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, name, resetLink string) error {
	args := m.Called(ctx, email, name, resetLink)
	return args.Error(0)
}
func (m *MockEmailService) SendLoanDecision(ctx context.Context, email, name string, loan *domain.LoanAccount) error {
	args := m.Called(ctx, email, name, loan)
	return args.Error(0)
}
func (m *MockEmailService) SendLoanSettled(ctx context.Context, email, name string, loan *domain.LoanAccount) error {
	args := m.Called(ctx, email, name, loan)
	return args.Error(0)
}
func (m *MockEmailService) SendContributionReminder(ctx context.Context, email, name string, ms *domain.StokvelMembership) error {
	args := m.Called(ctx, email, name, ms)
	return args.Error(0)
}
func (m *MockEmailService) SendLoanPaymentReminder(ctx context.Context, email, name string, loan *domain.LoanAccount) error {
	args := m.Called(ctx, email, name, loan)
	return args.Error(0)
}

// MockAuthProvider
type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) Register(ctx context.Context, email, password, displayName string) (*auth.Identity, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}
func (m *MockAuthProvider) SignIn(ctx context.Context, email, password string) (*auth.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}
func (m *MockAuthProvider) SignOut(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}
func (m *MockAuthProvider) SendPasswordReset(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}
func (m *MockAuthProvider) CurrentUser(ctx context.Context, idToken string) (*auth.Identity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}
