package entities

// LineItem describes one purchasable unit sent to the payment provider.
// It is transient and never persisted.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	Currency   string
}
