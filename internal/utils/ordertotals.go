package utils

import (
	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// OrderTotals computes subtotal, discount and total for a cart. Items must
// already be validated by the caller (quantity >= 1, unit price >= 0); for a
// discount percent in [0,100] the total never goes negative.
func OrderTotals(items []domain.CartItem, discountPercent int) domain.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	discount := subtotal.Mul(decimal.NewFromInt(int64(discountPercent))).Div(oneHundred)
	return domain.OrderTotals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		Discount:        discount,
		Total:           subtotal.Sub(discount),
	}
}
