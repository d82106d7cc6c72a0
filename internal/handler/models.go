package handler

import (
	"time"

	"github.com/commercegate/checkout-service/internal/entities"
)

type CheckoutRequest struct {
	ProductsIDs []string `json:"productsIds"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type Order struct {
	ID        string      `json:"id"`
	StoreID   string      `json:"store_id"`
	Paid      bool        `json:"paid"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:        o.ID,
		StoreID:   o.StoreID,
		Paid:      o.Paid,
		CreatedAt: o.CreatedAt,
		Items:     items,
	}
}
