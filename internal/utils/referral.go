package utils

import (
	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
)

var referralCommissionRate = decimal.NewFromFloat(0.05)

// ReferralCommission is 5% of the referred loan's principal.
func ReferralCommission(referredLoanAmount decimal.Decimal) (decimal.Decimal, error) {
	if referredLoanAmount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return referredLoanAmount.Mul(referralCommissionRate), nil
}
