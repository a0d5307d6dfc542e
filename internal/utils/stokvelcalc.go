package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
)

// stokvelTypes is the closed registry of stokvel products. Only the Planning
// stokvel permits early withdrawal.
var stokvelTypes = map[domain.StokvelType]domain.StokvelTypeConfig{
	domain.StokvelTypeJanuary:  {Type: domain.StokvelTypeJanuary, DurationMonths: 10, AllowsEarlyWithdrawal: false},
	domain.StokvelTypeGrocery:  {Type: domain.StokvelTypeGrocery, DurationMonths: 10, AllowsEarlyWithdrawal: false},
	domain.StokvelTypePlanning: {Type: domain.StokvelTypePlanning, DurationMonths: 10, AllowsEarlyWithdrawal: true},
}

// StokvelConfig resolves a validated stokvel type to its product definition.
func StokvelConfig(t domain.StokvelType) (domain.StokvelTypeConfig, bool) {
	cfg, ok := stokvelTypes[t]
	return cfg, ok
}

// StokvelDates returns the start and end dates for a stokvel cycle.
//
// The January stokvel runs Feb 1 through Dec 1 of the reference year. That is
// an 11-month calendar span against a declared 10-month duration; the span is
// the product's documented behavior and is kept as-is.
func StokvelDates(t domain.StokvelType, referenceYear int, now time.Time) (start, end time.Time, err error) {
	switch t {
	case domain.StokvelTypeJanuary:
		start = time.Date(referenceYear, time.February, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(referenceYear, time.December, 1, 0, 0, 0, 0, time.UTC)
	case domain.StokvelTypeGrocery:
		start = time.Date(referenceYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(referenceYear, time.October, 1, 0, 0, 0, 0, time.UTC)
	case domain.StokvelTypePlanning:
		start = DateOnly(now)
		end = AddCalendarMonths(start, stokvelTypes[t].DurationMonths)
	default:
		err = fmt.Errorf("unknown stokvel type %q", t)
	}
	return start, end, err
}

// ProjectedPayout is the nominal payout over a full cycle.
func ProjectedPayout(monthlyContribution decimal.Decimal, cfg domain.StokvelTypeConfig) decimal.Decimal {
	return monthlyContribution.Mul(decimal.NewFromInt(int64(cfg.DurationMonths)))
}

// RecordContribution applies a contribution to a membership. The next due
// date is always recomputed from now, not from the previous due date, so a
// late contribution does not catch the schedule up.
func RecordContribution(m *domain.StokvelMembership, amount decimal.Decimal, now time.Time) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	m.Balance = m.Balance.Add(amount)
	m.ContributionsCount++
	m.NextContributionDate = AddCalendarMonths(DateOnly(now), 1)
	return nil
}

// ValidateWithdrawal checks whether an early withdrawal is permitted for the
// given membership and amount. Passing means a pending request may be
// created; approval itself happens in an external workflow.
func ValidateWithdrawal(cfg domain.StokvelTypeConfig, m *domain.StokvelMembership, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if !cfg.AllowsEarlyWithdrawal {
		return domain.ErrNotAllowed
	}
	if amount.GreaterThan(m.Balance) {
		return domain.ErrInsufficientBalance
	}
	return nil
}
