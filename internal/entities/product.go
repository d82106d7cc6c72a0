package entities

import "github.com/shopspring/decimal"

// Product is read-only from the checkout flow's perspective.
type Product struct {
	ID      string
	StoreID string
	Name    string
	Price   decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// UnitAmount returns the price in minor currency units (price * 100,
// truncated toward zero).
func (p Product) UnitAmount() int64 {
	return p.Price.Mul(hundred).IntPart()
}
