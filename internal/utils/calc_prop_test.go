package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"stokvel-backend/internal/domain"
)

func TestApplyLoanPayment_BalanceMonotone(t *testing.T) {
	principals := []int64{500, 1000, 2000, 3000}

	rapid.Check(t, func(t *rapid.T) {
		principal := rapid.SampledFrom(principals).Draw(t, "principal")
		term := rapid.IntRange(1, 3).Draw(t, "term")
		acct := approvedLoanRapid(t, principal, term)

		payments := rapid.SliceOfN(rapid.Int64Range(1, 200000), 1, 20).Draw(t, "payments")
		prev := acct.RemainingBalance
		for _, cents := range payments {
			if acct.Status != domain.LoanStatusApproved {
				break
			}
			amount := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
			before := acct.RemainingBalance
			if err := ApplyLoanPayment(acct, amount); err != nil {
				t.Fatalf("payment %s rejected: %v", amount, err)
			}
			expected := decimal.Max(decimal.Zero, before.Sub(amount))
			if !acct.RemainingBalance.Equal(expected) {
				t.Fatalf("balance %s, want max(0, %s-%s)", acct.RemainingBalance, before, amount)
			}
			if acct.RemainingBalance.GreaterThan(prev) {
				t.Fatalf("balance increased from %s to %s", prev, acct.RemainingBalance)
			}
			prev = acct.RemainingBalance
		}

		if acct.RemainingBalance.IsNegative() {
			t.Fatalf("balance went negative: %s", acct.RemainingBalance)
		}
		if acct.RemainingBalance.IsZero() && acct.Status != domain.LoanStatusPaid {
			t.Fatalf("zero balance but status %s", acct.Status)
		}
	})
}

func approvedLoanRapid(t *rapid.T, principal int64, term int) *domain.LoanAccount {
	quote, err := QuoteLoan(decimal.NewFromInt(principal), term)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	return &domain.LoanAccount{
		Principal:        quote.Principal,
		TermMonths:       quote.TermMonths,
		TotalRepayment:   quote.TotalRepayment,
		MonthlyRepayment: quote.MonthlyRepayment,
		AmountPaid:       decimal.Zero,
		RemainingBalance: quote.TotalRepayment,
		Status:           domain.LoanStatusApproved,
	}
}

func TestOrderTotals_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "items")
		items := make([]domain.CartItem, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, domain.CartItem{
				UnitPrice: decimal.NewFromInt(rapid.Int64Range(0, 100000).Draw(t, "price")).Div(decimal.NewFromInt(100)),
				Quantity:  rapid.IntRange(1, 50).Draw(t, "qty"),
			})
		}
		pct := rapid.IntRange(0, 100).Draw(t, "pct")

		totals := OrderTotals(items, pct)
		if totals.Total.IsNegative() {
			t.Fatalf("total negative: %s", totals.Total)
		}
		if !totals.Discount.Add(totals.Total).Equal(totals.Subtotal) {
			t.Fatalf("discount %s + total %s != subtotal %s", totals.Discount, totals.Total, totals.Subtotal)
		}
	})
}

func TestDiscountPercent_TierProperties(t *testing.T) {
	valid := map[int]bool{0: true, 10: true, 20: true, 25: true, 30: true}

	rapid.Check(t, func(t *rapid.T) {
		savings := decimal.NewFromInt(rapid.Int64Range(0, 2000000).Draw(t, "savings")).Div(decimal.NewFromInt(100))
		cover := rapid.Bool().Draw(t, "cover")

		pct := DiscountPercent(savings, cover)
		require.True(t, valid[pct], "unexpected tier %d", pct)

		// Funeral cover never lowers the tier.
		withCover := DiscountPercent(savings, true)
		withoutCover := DiscountPercent(savings, false)
		require.GreaterOrEqual(t, withCover, withoutCover)

		// Tiers are monotone in savings.
		more := DiscountPercent(savings.Add(decimal.NewFromInt(100)), cover)
		require.GreaterOrEqual(t, more, pct)
	})
}
