package utils

import (
	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
)

// Loan fee structure: flat interest and initiation fee as fractions of the
// principal, plus a fixed service fee independent of loan size.
var (
	loanInterestRate   = decimal.NewFromFloat(0.045)
	loanInitiationRate = decimal.NewFromFloat(0.15)
	loanServiceFee     = decimal.NewFromFloat(52.26)
)

// QuoteLoan derives the fee structure for a principal and term. The discrete
// amount/term policy lives in the loan service, in front of this calculator,
// so the math stays reusable for other amount policies.
func QuoteLoan(principal decimal.Decimal, termMonths int) (domain.LoanQuote, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return domain.LoanQuote{}, domain.ErrInvalidAmount
	}
	if termMonths < 1 {
		return domain.LoanQuote{}, domain.ErrInvalidApplication
	}

	interest := principal.Mul(loanInterestRate)
	initiation := principal.Mul(loanInitiationRate)
	total := principal.Add(interest).Add(loanServiceFee).Add(initiation)
	monthly := total.Div(decimal.NewFromInt(int64(termMonths)))

	return domain.LoanQuote{
		Principal:        principal,
		TermMonths:       termMonths,
		Interest:         interest,
		ServiceFee:       loanServiceFee,
		InitiationFee:    initiation,
		TotalRepayment:   total,
		MonthlyRepayment: monthly,
	}, nil
}

// ApplyLoanPayment applies a payment to an approved loan. The remaining
// balance clamps at zero: any excess beyond the total repayment is absorbed,
// not tracked as credit. Reaching zero settles the loan.
func ApplyLoanPayment(acct *domain.LoanAccount, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if acct.Status != domain.LoanStatusApproved {
		return domain.ErrInvalidState
	}

	acct.AmountPaid = acct.AmountPaid.Add(amount)
	remaining := acct.TotalRepayment.Sub(acct.AmountPaid)
	if remaining.LessThanOrEqual(decimal.Zero) {
		remaining = decimal.Zero
		acct.Status = domain.LoanStatusPaid
	}
	acct.RemainingBalance = remaining
	return nil
}
