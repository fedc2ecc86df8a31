package pricing

import "github.com/shopspring/decimal"

type Totals struct {
	Subtotal      decimal.Decimal
	TotalQuantity int64
}

func ComputeSellerTotals(lines []Line) Totals {
	t := Totals{Subtotal: decimal.Zero}
	for _, l := range lines {
		t.Subtotal = t.Subtotal.Add(l.LineTotal)
		t.TotalQuantity += l.QuantityContribution
	}
	return t
}
