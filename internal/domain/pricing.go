package domain

import "github.com/shopspring/decimal"

// PricedLine is a resolved (unit price, quantity) pair ready for totalling.
type PricedLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderTotals is the output of the pricing pass over a resolved order.
type OrderTotals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// LineTotal computes unit_price * quantity for a single line.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals prices a resolved set of lines: subtotal is the sum of line
// totals, tax is subtotal * taxRate rounded to cents, total is their sum.
// Pure function; no catalog access.
func ComputeTotals(lines []PricedLine, taxRate decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l.UnitPrice, l.Quantity))
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return OrderTotals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}
}
