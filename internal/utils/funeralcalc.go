package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
)

// funeralPlans is the closed plan catalogue. Prices and cover amounts are
// product constants; retune them here, nowhere else.
var funeralPlans = map[domain.FuneralPlanID]domain.FuneralPlan{
	domain.FuneralPlanBasic: {
		ID:           domain.FuneralPlanBasic,
		Name:         "Basic",
		MonthlyPrice: decimal.NewFromInt(99),
		Coverage: map[domain.MemberCategory]decimal.Decimal{
			domain.MemberCategoryMain: decimal.NewFromInt(15000),
		},
	},
	domain.FuneralPlanFamily: {
		ID:           domain.FuneralPlanFamily,
		Name:         "Family",
		MonthlyPrice: decimal.NewFromInt(179),
		Coverage: map[domain.MemberCategory]decimal.Decimal{
			domain.MemberCategoryMain:     decimal.NewFromInt(20000),
			domain.MemberCategorySpouse:   decimal.NewFromInt(20000),
			domain.MemberCategoryChildren: decimal.NewFromInt(10000),
		},
		MaxChildren:           5,
		RequiresFamilyDetails: true,
	},
	domain.FuneralPlanExtended: {
		ID:           domain.FuneralPlanExtended,
		Name:         "Extended",
		MonthlyPrice: decimal.NewFromInt(249),
		Coverage: map[domain.MemberCategory]decimal.Decimal{
			domain.MemberCategoryMain:     decimal.NewFromInt(25000),
			domain.MemberCategorySpouse:   decimal.NewFromInt(25000),
			domain.MemberCategoryChildren: decimal.NewFromInt(12500),
			domain.MemberCategoryExtended: decimal.NewFromInt(7500),
		},
		MaxChildren:           5,
		MaxExtended:           4,
		RequiresFamilyDetails: true,
	},
}

// additionalBenefits maps optional add-on keys to their monthly price.
var additionalBenefits = map[string]decimal.Decimal{
	"tombstone":       decimal.NewFromInt(45),
	"grocery_benefit": decimal.NewFromInt(25),
	"airtime":         decimal.NewFromInt(10),
	"transport":       decimal.NewFromInt(30),
}

// waitingPeriods is the claim waiting period in months, keyed by cause of
// death. Unrecognized causes fall back to the natural-death period.
var waitingPeriods = map[domain.CauseOfDeath]int{
	domain.CauseNaturalDeath:    6,
	domain.CauseAccidentalDeath: 0,
	domain.CauseSuicide:         24,
}

const defaultWaitingPeriodMonths = 6

// FuneralPlanByID resolves a plan ID to its definition.
func FuneralPlanByID(id domain.FuneralPlanID) (domain.FuneralPlan, bool) {
	plan, ok := funeralPlans[id]
	return plan, ok
}

// FuneralPremium computes the composite monthly premium: plan base price plus
// the prices of recognized add-ons. Unknown add-on keys are ignored. An
// unknown plan yields zero and ErrInvalidPlan.
func FuneralPremium(planID domain.FuneralPlanID, addOns []string) (decimal.Decimal, error) {
	plan, ok := funeralPlans[planID]
	if !ok {
		return decimal.Zero, domain.ErrInvalidPlan
	}
	premium := plan.MonthlyPrice
	for _, key := range addOns {
		if price, known := additionalBenefits[key]; known {
			premium = premium.Add(price)
		}
	}
	return premium, nil
}

// ElapsedCoverMonths counts cover months as 30-day blocks, rounded up. The
// 30-day-month approximation is contractual: switching to calendar months
// would shift edge-case claim outcomes and needs product sign-off.
func ElapsedCoverMonths(startDate, now time.Time) int {
	days := int(now.Sub(startDate).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return (days + 29) / 30
}

// IsClaimEligible reports whether the waiting period for the given cause of
// death has lapsed since cover started.
func IsClaimEligible(m *domain.FuneralCoverMembership, cause domain.CauseOfDeath, now time.Time) bool {
	waiting, ok := waitingPeriods[cause]
	if !ok {
		waiting = defaultWaitingPeriodMonths
	}
	return ElapsedCoverMonths(m.StartDate, now) >= waiting
}

// ValidateActivation enforces the dependent-data rule: family-tier plans
// cannot be activated without family details.
func ValidateActivation(planID domain.FuneralPlanID, family *domain.FamilyDetails) error {
	plan, ok := funeralPlans[planID]
	if !ok {
		return domain.ErrInvalidPlan
	}
	if plan.RequiresFamilyDetails && family == nil {
		return domain.ErrMissingFamilyDetails
	}
	return nil
}
