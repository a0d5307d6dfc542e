package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralStatus string

const (
	ReferralStatusPending ReferralStatus = "PENDING"
	ReferralStatusActive  ReferralStatus = "ACTIVE"
	ReferralStatusPaid    ReferralStatus = "PAID"
)

// Referral stays PENDING until the referred member's first loan is approved,
// at which point the commission is computed from that loan's principal.
type Referral struct {
	ID                 string          `json:"id"`
	ReferrerID         string          `json:"referrer_id"`
	ReferredUserID     string          `json:"referred_user_id"`
	ReferredLoanID     string          `json:"referred_loan_id,omitempty"`
	ReferredLoanAmount decimal.Decimal `json:"referred_loan_amount"`
	Commission         decimal.Decimal `json:"commission"`
	Status             ReferralStatus  `json:"status"`
	CreatedOn          time.Time       `json:"created_on"`
	UpdatedOn          time.Time       `json:"updated_on"`
}
