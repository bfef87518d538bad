package services

import "github.com/shopspring/decimal"

// Canonical rounding policy: monetary and hour totals carry 2 decimals,
// percentages carry 1, both rounded half away from zero. Totals are summed
// on the raw decimals and rounded once at the end; fields that are stored
// already rounded (invoice amounts, cached worked-hour amounts) are summed
// as-is.

var oneHundred = decimal.NewFromInt(100)

// RoundMoney rounds a monetary or hour value to 2 decimal places
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundPercent rounds a percentage to 1 decimal place
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// PercentageOf returns part/whole*100 rounded to 1 decimal place, or zero
// when the whole is zero
func PercentageOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return RoundPercent(part.Div(whole).Mul(oneHundred))
}
