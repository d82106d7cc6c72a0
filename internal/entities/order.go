package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

// Order is the persisted order aggregate. Items are created in the same
// transaction as the order itself and are never mutated afterwards;
// Paid flips only via the payment webhook.
type Order struct {
	ID        string
	StoreID   string
	Paid      bool
	CreatedAt time.Time
	Items     []OrderItem
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
}

var (
	ErrProductsRequired   = errors.New("product ids are required")
	ErrNoProductsResolved = errors.New("no requested product exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentSession     = errors.New("payment session creation failed")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
