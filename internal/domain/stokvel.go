package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StokvelType string

const (
	StokvelTypeJanuary  StokvelType = "JANUARY"
	StokvelTypeGrocery  StokvelType = "GROCERY"
	StokvelTypePlanning StokvelType = "PLANNING"
)

// StokvelTypeConfig is the fixed product definition for one stokvel type.
type StokvelTypeConfig struct {
	Type                  StokvelType `json:"type"`
	DurationMonths        int         `json:"duration_months"`
	AllowsEarlyWithdrawal bool        `json:"allows_early_withdrawal"`
}

type MembershipStatus string

const (
	MembershipStatusActive MembershipStatus = "ACTIVE"
	MembershipStatusClosed MembershipStatus = "CLOSED"
)

type StokvelMembership struct {
	ID                   string           `json:"id"`
	UserID               string           `json:"user_id"`
	StokvelType          StokvelType      `json:"stokvel_type"`
	Balance              decimal.Decimal  `json:"balance"`
	MonthlyContribution  decimal.Decimal  `json:"monthly_contribution"`
	ContributionsCount   int              `json:"contributions_count"`
	ProjectedPayout      decimal.Decimal  `json:"projected_payout"`
	StartDate            time.Time        `json:"start_date"`
	EndDate              time.Time        `json:"end_date"`
	NextContributionDate time.Time        `json:"next_contribution_date"`
	Status               MembershipStatus `json:"status"`
	CreatedOn            time.Time        `json:"created_on"`
	UpdatedOn            time.Time        `json:"updated_on"`
}

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved WithdrawalStatus = "APPROVED"
	WithdrawalStatusRejected WithdrawalStatus = "REJECTED"
)

// WithdrawalRequest records an early-withdrawal ask. Approval happens in an
// external back-office workflow; this side only creates and expires them.
type WithdrawalRequest struct {
	ID           string           `json:"id"`
	MembershipID string           `json:"membership_id"`
	UserID       string           `json:"user_id"`
	Amount       decimal.Decimal  `json:"amount"`
	Status       WithdrawalStatus `json:"status"`
	RequestedOn  time.Time        `json:"requested_on"`
	ResolvedOn   *time.Time       `json:"resolved_on,omitempty"`
}
