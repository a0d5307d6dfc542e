package service

import (
	"context"

	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password, referralCode string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	ForgotPassword(ctx context.Context, email string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, phone string) error
}

type LoanService interface {
	QuoteLoan(ctx context.Context, principal decimal.Decimal, termMonths int) (*domain.LoanQuote, error)
	ApplyForLoan(ctx context.Context, userID string, principal decimal.Decimal, termMonths int) (*domain.LoanAccount, error)
	ApproveLoan(ctx context.Context, loanID string) (*domain.LoanAccount, error)
	RejectLoan(ctx context.Context, loanID, reason string) (*domain.LoanAccount, error)
	MakePayment(ctx context.Context, userID, loanID string, amount decimal.Decimal) (*domain.LoanAccount, error)
	GetLoan(ctx context.Context, userID, loanID string) (*domain.LoanAccount, error)
	ListLoans(ctx context.Context, userID string) ([]domain.LoanAccount, error)
}

type StokvelService interface {
	ListStokvelTypes(ctx context.Context) []domain.StokvelTypeConfig
	Join(ctx context.Context, userID string, stokvelType domain.StokvelType, monthlyContribution decimal.Decimal) (*domain.StokvelMembership, error)
	Contribute(ctx context.Context, userID, membershipID string, amount decimal.Decimal) (*domain.StokvelMembership, error)
	RequestWithdrawal(ctx context.Context, userID, membershipID string, amount decimal.Decimal) (*domain.WithdrawalRequest, error)
	ListMemberships(ctx context.Context, userID string) ([]domain.StokvelMembership, error)
	GetMembership(ctx context.Context, userID, membershipID string) (*domain.StokvelMembership, error)
	// CumulativeSavings sums the balances of the member's active memberships.
	CumulativeSavings(ctx context.Context, userID string) (decimal.Decimal, error)
}

type FuneralService interface {
	ListPlans(ctx context.Context) []domain.FuneralPlan
	QuotePremium(ctx context.Context, planID domain.FuneralPlanID, additionalBenefits []string) (decimal.Decimal, error)
	Activate(ctx context.Context, userID string, planID domain.FuneralPlanID, additionalBenefits []string, family *domain.FamilyDetails) (*domain.FuneralCoverMembership, error)
	Cancel(ctx context.Context, userID, membershipID string) error
	SubmitClaim(ctx context.Context, userID, membershipID string, cause domain.CauseOfDeath, category domain.MemberCategory) (*domain.FuneralClaim, error)
	GetActiveCover(ctx context.Context, userID string) (*domain.FuneralCoverMembership, error)
}

type StoreService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	PreviewTotals(ctx context.Context, userID string, items []domain.CartItem) (*domain.OrderTotals, error)
	Checkout(ctx context.Context, userID string, items []domain.CartItem) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

type ReferralService interface {
	ListReferrals(ctx context.Context, referrerID string) ([]domain.Referral, error)
	// ActivateOnLoanApproval moves the referred member's referral to ACTIVE
	// and computes the commission from the approved loan's principal.
	ActivateOnLoanApproval(ctx context.Context, loan *domain.LoanAccount) error
}

type NotificationService interface {
	Notify(ctx context.Context, userID, title, message string, attributes map[string]string) error
	List(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendPasswordReset(ctx context.Context, email, name, resetLink string) error
	SendLoanDecision(ctx context.Context, email, name string, loan *domain.LoanAccount) error
	SendLoanSettled(ctx context.Context, email, name string, loan *domain.LoanAccount) error
	SendContributionReminder(ctx context.Context, email, name string, m *domain.StokvelMembership) error
	SendLoanPaymentReminder(ctx context.Context, email, name string, loan *domain.LoanAccount) error
}
