package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "PENDING"
	LoanStatusApproved LoanStatus = "APPROVED"
	LoanStatusRejected LoanStatus = "REJECTED"
	LoanStatusPaid     LoanStatus = "PAID"
)

// LoanQuote is the full fee structure derived from principal and term.
// Every field is a pure function of Principal and TermMonths.
type LoanQuote struct {
	Principal        decimal.Decimal `json:"principal"`
	TermMonths       int             `json:"term_months"`
	Interest         decimal.Decimal `json:"interest"`
	ServiceFee       decimal.Decimal `json:"service_fee"`
	InitiationFee    decimal.Decimal `json:"initiation_fee"`
	TotalRepayment   decimal.Decimal `json:"total_repayment"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
}

type LoanAccount struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Principal  decimal.Decimal `json:"principal"`
	TermMonths int             `json:"term_months"`

	// Fee snapshot fields, captured from the quote at application time.
	Interest         decimal.Decimal `json:"interest"`
	ServiceFee       decimal.Decimal `json:"service_fee"`
	InitiationFee    decimal.Decimal `json:"initiation_fee"`
	TotalRepayment   decimal.Decimal `json:"total_repayment"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Status           LoanStatus      `json:"status"`
	DisbursedOn      *time.Time      `json:"disbursed_on,omitempty"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	CreatedOn        time.Time       `json:"created_on"`
	UpdatedOn        time.Time       `json:"updated_on"`
}
