package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/commercegate/checkout-service/internal/entities"
	"github.com/commercegate/checkout-service/pkg/trm"
	"github.com/commercegate/checkout-service/pkg/utils"

	"github.com/google/uuid"
)

type ProductRepo interface {
	ProductsByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Product, error)
}

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderItems(ctx context.Context, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, storeID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, storeID string) ([]entities.Order, error)
	MarkOrderPaid(ctx context.Context, orderID string) error
}

type PaymentProvider interface {
	CreateSession(ctx context.Context, orderID string, items []entities.LineItem) (string, error)
}

type Publisher interface {
	OrderCreated(ctx context.Context, order entities.Order) error
	OrderPaid(ctx context.Context, orderID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	products  ProductRepo
	orders    OrderRepo
	payments  PaymentProvider
	events    Publisher
	cache     Cache
	currency  string
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductRepo,
	orders OrderRepo,
	payments PaymentProvider,
	events Publisher,
	cache Cache,
	currency string,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		products:  products,
		orders:    orders,
		payments:  payments,
		events:    events,
		cache:     cache,
		currency:  currency,
	}
}

// Checkout resolves the requested products, persists the order aggregate in
// one transaction and returns the payment session URL. Requested ids that
// don't resolve to a product of the store are skipped from both line items
// and order items. If the provider call fails the order stays persisted and
// unpaid; the sweeper reports such orders later.
func (s *checkoutService) Checkout(ctx context.Context, storeID string, productIDs []string) (string, error) {
	if len(productIDs) == 0 {
		return "", entities.ErrProductsRequired
	}

	products, err := s.products.ProductsByIDs(ctx, storeID, productIDs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve products: %w", err)
	}

	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		CreatedAt: time.Now().UTC(),
	}

	// Iterate the requested ids, not the resolved set, so duplicates are
	// preserved and line items follow request order.
	lineItems := make([]entities.LineItem, 0, len(productIDs))
	for _, id := range productIDs {
		product, ok := byID[id]
		if !ok {
			s.logger.WarnContext(ctx, "skipping unknown product",
				slog.String("product_id", id), slog.String("store_id", storeID))
			continue
		}

		order.Items = append(order.Items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: product.ID,
		})
		lineItems = append(lineItems, entities.LineItem{
			Name:       product.Name,
			UnitAmount: product.UnitAmount(),
			Quantity:   1,
			Currency:   s.currency,
		})
	}

	if len(order.Items) == 0 {
		return "", entities.ErrNoProductsResolved
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return err
		}
		return s.orders.SaveOrderItems(ctx, order.Items)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("store_id", storeID),
		slog.Int("items", len(order.Items)),
	)

	if err := s.events.OrderCreated(ctx, order); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order created",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}

	url, err := s.payments.CreateSession(ctx, order.ID, lineItems)
	if err != nil {
		// The order stays persisted and unpaid. There is no compensating
		// delete; stale unpaid orders surface through the sweeper.
		s.logger.ErrorContext(ctx, "payment session failed, order remains unpaid",
			slog.String("order_id", order.ID), slog.Any("error", err))
		return "", err
	}

	return url, nil
}

func (s *checkoutService) GetOrderByID(ctx context.Context, storeID, orderID string) (entities.Order, error) {
	key := storeID + ":" + orderID
	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	err := utils.Retry(cfg, func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, storeID, orderID)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(key, data)

	return order, nil
}

func (s *checkoutService) ListOrders(ctx context.Context, storeID string) ([]entities.Order, error) {
	orders, err := s.orders.ListOrders(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// MarkOrderPaid is idempotent: re-delivered webhooks update paid to the
// same value. The cached copy is not invalidated, so reads may report the
// order unpaid for up to the cache TTL.
func (s *checkoutService) MarkOrderPaid(ctx context.Context, orderID string) error {
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	err := utils.Retry(cfg, func() error {
		return s.orders.MarkOrderPaid(ctx, orderID)
	}, entities.ErrOrderNotFound)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "order marked paid", slog.String("order_id", orderID))

	if err := s.events.OrderPaid(ctx, orderID); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order paid",
			slog.String("order_id", orderID), slog.Any("error", err))
	}
	return nil
}
