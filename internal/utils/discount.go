package utils

import "github.com/shopspring/decimal"

var (
	discountUpperBand = decimal.NewFromInt(10000)
	discountLowerBand = decimal.NewFromInt(5000)
)

// DiscountPercent derives the store discount tier from cumulative stokvel
// savings and funeral cover enrollment. Derived state: recompute on every
// read, never cache.
func DiscountPercent(cumulativeSavings decimal.Decimal, hasFuneralCover bool) int {
	switch {
	case cumulativeSavings.GreaterThanOrEqual(discountUpperBand):
		if hasFuneralCover {
			return 30
		}
		return 25
	case cumulativeSavings.GreaterThanOrEqual(discountLowerBand):
		if hasFuneralCover {
			return 20
		}
		return 10
	default:
		return 0
	}
}
