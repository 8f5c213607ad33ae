package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundCents rounds to currency precision (2 decimal places, half-up).
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PctOf returns amount * pct / 100, unrounded.
func PctOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// MaxDecimal returns the larger of a and b.
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
