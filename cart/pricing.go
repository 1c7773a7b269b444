package cart

import "github.com/shopspring/decimal"

// LineTotal is unitPrice x quantity at full precision.
func LineTotal(it Item) decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total sums line totals at full precision. Rounding happens only at
// presentation, never in storage.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineTotal(it))
	}
	return total
}

// Display renders an amount for currency display with two-decimal rounding.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
