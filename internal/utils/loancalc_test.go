package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stokvel-backend/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuoteLoan_FeeStructure(t *testing.T) {
	principals := []int64{500, 1000, 2000, 3000}
	terms := []int{1, 2, 3}

	for _, p := range principals {
		for _, term := range terms {
			principal := decimal.NewFromInt(p)
			quote, err := QuoteLoan(principal, term)
			require.NoError(t, err)

			expectedTotal := principal.
				Add(principal.Mul(dec("0.045"))).
				Add(dec("52.26")).
				Add(principal.Mul(dec("0.15")))
			assert.True(t, quote.TotalRepayment.Equal(expectedTotal),
				"total for %d/%d: got %s want %s", p, term, quote.TotalRepayment, expectedTotal)

			expectedMonthly := expectedTotal.Div(decimal.NewFromInt(int64(term)))
			assert.True(t, quote.MonthlyRepayment.Equal(expectedMonthly),
				"monthly for %d/%d: got %s want %s", p, term, quote.MonthlyRepayment, expectedMonthly)
		}
	}
}

func TestQuoteLoan_WorkedExample(t *testing.T) {
	// 1000 over 2 months: interest 45, initiation 150, service 52.26.
	quote, err := QuoteLoan(decimal.NewFromInt(1000), 2)
	require.NoError(t, err)

	assert.True(t, quote.Interest.Equal(dec("45")), "interest: %s", quote.Interest)
	assert.True(t, quote.InitiationFee.Equal(dec("150")), "initiation: %s", quote.InitiationFee)
	assert.True(t, quote.ServiceFee.Equal(dec("52.26")), "service fee: %s", quote.ServiceFee)
	assert.True(t, quote.TotalRepayment.Equal(dec("1247.26")), "total: %s", quote.TotalRepayment)
	assert.True(t, quote.MonthlyRepayment.Equal(dec("623.63")), "monthly: %s", quote.MonthlyRepayment)
}

func TestQuoteLoan_Invalid(t *testing.T) {
	t.Run("Zero principal", func(t *testing.T) {
		_, err := QuoteLoan(decimal.Zero, 2)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Negative principal", func(t *testing.T) {
		_, err := QuoteLoan(decimal.NewFromInt(-500), 2)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Zero term", func(t *testing.T) {
		_, err := QuoteLoan(decimal.NewFromInt(1000), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidApplication)
	})
}

func approvedLoan(t *testing.T, principal int64, term int) *domain.LoanAccount {
	t.Helper()
	quote, err := QuoteLoan(decimal.NewFromInt(principal), term)
	require.NoError(t, err)
	return &domain.LoanAccount{
		Principal:        quote.Principal,
		TermMonths:       quote.TermMonths,
		Interest:         quote.Interest,
		ServiceFee:       quote.ServiceFee,
		InitiationFee:    quote.InitiationFee,
		TotalRepayment:   quote.TotalRepayment,
		MonthlyRepayment: quote.MonthlyRepayment,
		AmountPaid:       decimal.Zero,
		RemainingBalance: quote.TotalRepayment,
		Status:           domain.LoanStatusApproved,
	}
}

func TestApplyLoanPayment(t *testing.T) {
	t.Run("Zero amount rejected", func(t *testing.T) {
		acct := approvedLoan(t, 1000, 2)
		err := ApplyLoanPayment(acct, decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.True(t, acct.RemainingBalance.Equal(dec("1247.26")))
	})

	t.Run("Pending loan rejected", func(t *testing.T) {
		acct := approvedLoan(t, 1000, 2)
		acct.Status = domain.LoanStatusPending
		err := ApplyLoanPayment(acct, dec("100"))
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Partial payment reduces balance", func(t *testing.T) {
		acct := approvedLoan(t, 1000, 2)
		require.NoError(t, ApplyLoanPayment(acct, dec("623.63")))
		assert.True(t, acct.AmountPaid.Equal(dec("623.63")))
		assert.True(t, acct.RemainingBalance.Equal(dec("623.63")))
		assert.Equal(t, domain.LoanStatusApproved, acct.Status)
	})

	t.Run("Exact payoff settles the loan", func(t *testing.T) {
		acct := approvedLoan(t, 1000, 2)
		require.NoError(t, ApplyLoanPayment(acct, dec("623.63")))
		require.NoError(t, ApplyLoanPayment(acct, dec("623.63")))
		assert.True(t, acct.RemainingBalance.IsZero())
		assert.Equal(t, domain.LoanStatusPaid, acct.Status)
	})

	t.Run("Overpayment absorbed, no credit", func(t *testing.T) {
		acct := approvedLoan(t, 500, 1)
		require.NoError(t, ApplyLoanPayment(acct, dec("10000")))
		assert.True(t, acct.RemainingBalance.IsZero())
		assert.Equal(t, domain.LoanStatusPaid, acct.Status)
		assert.True(t, acct.AmountPaid.Equal(dec("10000")))
	})

	t.Run("No payments accepted after settlement", func(t *testing.T) {
		acct := approvedLoan(t, 500, 1)
		require.NoError(t, ApplyLoanPayment(acct, acct.TotalRepayment))
		err := ApplyLoanPayment(acct, dec("1"))
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
