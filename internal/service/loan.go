package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
	"stokvel-backend/internal/utils"
)

// Loan applications are restricted to a fixed menu of principals and terms.
var (
	allowedLoanAmounts = []decimal.Decimal{
		decimal.NewFromInt(500),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(3000),
	}
	allowedLoanTerms = []int{1, 2, 3}
)

type loanService struct {
	loanRepo  repository.LoanRepository
	userRepo  repository.UserRepository
	referrals ReferralService
	notify    NotificationService
	email     EmailService
}

func NewLoanService(loanRepo repository.LoanRepository, userRepo repository.UserRepository, referrals ReferralService, notify NotificationService, email EmailService) LoanService {
	return &loanService{
		loanRepo:  loanRepo,
		userRepo:  userRepo,
		referrals: referrals,
		notify:    notify,
		email:     email,
	}
}

func (s *loanService) QuoteLoan(ctx context.Context, principal decimal.Decimal, termMonths int) (*domain.LoanQuote, error) {
	quote, err := utils.QuoteLoan(principal, termMonths)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *loanService) ApplyForLoan(ctx context.Context, userID string, principal decimal.Decimal, termMonths int) (*domain.LoanAccount, error) {
	if !isAllowedLoan(principal, termMonths) {
		return nil, domain.ErrInvalidApplication
	}

	quote, err := utils.QuoteLoan(principal, termMonths)
	if err != nil {
		return nil, err
	}

	loan := &domain.LoanAccount{
		UserID:           userID,
		Principal:        quote.Principal,
		TermMonths:       quote.TermMonths,
		Interest:         quote.Interest,
		ServiceFee:       quote.ServiceFee,
		InitiationFee:    quote.InitiationFee,
		TotalRepayment:   quote.TotalRepayment,
		MonthlyRepayment: quote.MonthlyRepayment,
		AmountPaid:       decimal.Zero,
		RemainingBalance: quote.TotalRepayment,
		Status:           domain.LoanStatusPending,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ApproveLoan(ctx context.Context, loanID string) (*domain.LoanAccount, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanStatusPending {
		return nil, domain.ErrInvalidState
	}

	now := utils.DateOnly(time.Now().UTC())
	loan.Status = domain.LoanStatusApproved
	loan.DisbursedOn = &now
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	if err := s.referrals.ActivateOnLoanApproval(ctx, loan); err != nil {
		logger.ErrorContext(ctx, "failed to activate referral for approved loan", "loan_id", loan.ID, "error", err)
	}

	s.announceDecision(ctx, loan, "Loan approved",
		fmt.Sprintf("Your loan of R%s over %d month(s) has been approved and disbursed.", loan.Principal.StringFixed(2), loan.TermMonths))
	return loan, nil
}

func (s *loanService) RejectLoan(ctx context.Context, loanID, reason string) (*domain.LoanAccount, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanStatusPending {
		return nil, domain.ErrInvalidState
	}

	loan.Status = domain.LoanStatusRejected
	loan.RejectionReason = reason
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	s.announceDecision(ctx, loan, "Loan application declined",
		fmt.Sprintf("Your loan application of R%s was declined. %s", loan.Principal.StringFixed(2), reason))
	return loan, nil
}

func (s *loanService) MakePayment(ctx context.Context, userID, loanID string, amount decimal.Decimal) (*domain.LoanAccount, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if err := utils.ApplyLoanPayment(loan, amount); err != nil {
		return nil, err
	}
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	if loan.Status == domain.LoanStatusPaid {
		if user, err := s.userRepo.GetByID(ctx, loan.UserID); err == nil {
			if err := s.email.SendLoanSettled(ctx, user.Email, user.DisplayName, loan); err != nil {
				logger.ErrorContext(ctx, "failed to send loan settled email", "loan_id", loan.ID, "error", err)
			}
		}
		if err := s.notify.Notify(ctx, loan.UserID, "Loan settled",
			"Congratulations, your loan is fully paid up.", map[string]string{"loan_id": loan.ID}); err != nil {
			logger.ErrorContext(ctx, "failed to create loan settled notification", "loan_id", loan.ID, "error", err)
		}
	}
	return loan, nil
}

func (s *loanService) GetLoan(ctx context.Context, userID, loanID string) (*domain.LoanAccount, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, userID string) ([]domain.LoanAccount, error) {
	return s.loanRepo.ListByUser(ctx, userID)
}

func (s *loanService) announceDecision(ctx context.Context, loan *domain.LoanAccount, title, message string) {
	if user, err := s.userRepo.GetByID(ctx, loan.UserID); err == nil {
		if err := s.email.SendLoanDecision(ctx, user.Email, user.DisplayName, loan); err != nil {
			logger.ErrorContext(ctx, "failed to send loan decision email", "loan_id", loan.ID, "error", err)
		}
	}
	if err := s.notify.Notify(ctx, loan.UserID, title, message, map[string]string{"loan_id": loan.ID}); err != nil {
		logger.ErrorContext(ctx, "failed to create loan notification", "loan_id", loan.ID, "error", err)
	}
}

func isAllowedLoan(principal decimal.Decimal, termMonths int) bool {
	amountOK := false
	for _, a := range allowedLoanAmounts {
		if principal.Equal(a) {
			amountOK = true
			break
		}
	}
	if !amountOK {
		return false
	}
	for _, t := range allowedLoanTerms {
		if termMonths == t {
			return true
		}
	}
	return false
}
