package repo

import (
	"time"

	"github.com/commercegate/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID      string          `db:"id"`
	StoreID string          `db:"store_id"`
	Name    string          `db:"name"`
	Price   decimal.Decimal `db:"price"`
}

type Order struct {
	ID        string    `db:"id"`
	StoreID   string    `db:"store_id"`
	Paid      bool      `db:"paid"`
	CreatedAt time.Time `db:"created_at"`
}

type OrderItem struct {
	ID        string `db:"id"`
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:      p.ID,
		StoreID: p.StoreID,
		Name:    p.Name,
		Price:   p.Price,
	}
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		StoreID:   o.StoreID,
		Paid:      o.Paid,
		CreatedAt: o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}
