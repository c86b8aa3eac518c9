package orders

import (
	"github.com/shopspring/decimal"

	"pharmacare/m/domain"
)

// SaleItemInput is one line of a sales order. UnitPrice is the price at time
// of sale, supplied by the caller rather than re-read from the catalog.
type SaleItemInput struct {
	ProductID int64        `json:"product_id"`
	Quantity  int64        `json:"quantity"`
	UnitPrice domain.Money `json:"unit_price"`
}

type saleLine struct {
	SaleItemInput
	Subtotal domain.Money
}

// buildSaleTotals computes each line's subtotal and the order total using
// exact decimal arithmetic. Pure computation, no I/O.
func buildSaleTotals(items []SaleItemInput) ([]saleLine, domain.Money) {
	lines := make([]saleLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		sub := it.UnitPrice.Decimal.Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(sub)
		lines = append(lines, saleLine{SaleItemInput: it, Subtotal: domain.NewMoney(sub)})
	}
	return lines, domain.NewMoney(total)
}
