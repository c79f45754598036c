// Package pricing - Rounding policy
package pricing

import "github.com/shopspring/decimal"

// Percentage rates used by the modifier chain
var (
	premiumSurchargeRate = decimal.RequireFromString("0.15")
	groupDiscountRate    = decimal.RequireFromString("0.10")
)

// roundedShare computes rate*amount rounded to the nearest whole
// currency unit, ties away from zero. The rounding happens at every
// modifier boundary: later percentages compound on already-rounded
// amounts, and the final totals depend on that.
func roundedShare(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}
