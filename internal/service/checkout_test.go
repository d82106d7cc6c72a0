package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/commercegate/checkout-service/internal/entities"
	"github.com/commercegate/checkout-service/internal/service"
	mocks "github.com/commercegate/checkout-service/internal/service/mocks"
	txMocks "github.com/commercegate/checkout-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCurrency = "USD"

type checkoutAPI interface {
	Checkout(ctx context.Context, storeID string, productIDs []string) (string, error)
	GetOrderByID(ctx context.Context, storeID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, storeID string) ([]entities.Order, error)
	MarkOrderPaid(ctx context.Context, orderID string) error
}

func newCheckoutService(t *testing.T) (
	*mocks.MockProductRepo,
	*mocks.MockOrderRepo,
	*mocks.MockPaymentProvider,
	*mocks.MockPublisher,
	*mocks.MockCache,
	checkoutAPI,
) {
	t.Helper()

	products := mocks.NewMockProductRepo(t)
	orders := mocks.NewMockOrderRepo(t)
	payments := mocks.NewMockPaymentProvider(t)
	events := mocks.NewMockPublisher(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	svc := service.NewCheckoutService(logger, tx, products, orders, payments, events, cache, testCurrency)
	return products, orders, payments, events, cache, svc
}

func TestCheckoutService_Checkout(t *testing.T) {
	p1 := entities.Product{ID: "p1", StoreID: "store-1", Name: "Shirt", Price: decimal.RequireFromString("10.00")}
	p2 := entities.Product{ID: "p2", StoreID: "store-1", Name: "Mug", Price: decimal.RequireFromString("25.50")}

	dbError := errors.New("db error")

	t.Run("creates order and returns session url", func(t *testing.T) {
		products, orders, payments, events, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"p1", "p2"}).
			Return([]entities.Product{p1, p2}, nil).Once()

		var savedOrder entities.Order
		orders.EXPECT().
			SaveOrder(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, o entities.Order) {
				savedOrder = o
			}).Return(nil).Once()
		orders.EXPECT().
			SaveOrderItems(mock.Anything, mock.Anything).
			Return(nil).Once()

		events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

		var sessionItems []entities.LineItem
		payments.EXPECT().
			CreateSession(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, orderID string, items []entities.LineItem) {
				sessionItems = items
			}).
			Return("https://pay.example.com/s/123", nil).Once()

		url, err := svc.Checkout(context.Background(), "store-1", []string{"p1", "p2"})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/s/123", url)

		assert.False(t, savedOrder.Paid)
		assert.Equal(t, "store-1", savedOrder.StoreID)
		assert.Len(t, savedOrder.Items, 2)
		assert.Equal(t, "p1", savedOrder.Items[0].ProductID)
		assert.Equal(t, "p2", savedOrder.Items[1].ProductID)

		require.Len(t, sessionItems, 2)
		assert.Equal(t, entities.LineItem{Name: "Shirt", UnitAmount: 1000, Quantity: 1, Currency: testCurrency}, sessionItems[0])
		assert.Equal(t, entities.LineItem{Name: "Mug", UnitAmount: 2550, Quantity: 1, Currency: testCurrency}, sessionItems[1])
	})

	t.Run("line items follow request order, not resolution order", func(t *testing.T) {
		products, orders, payments, events, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"p1", "p2"}).
			Return([]entities.Product{p2, p1}, nil).Once()

		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()

		var savedItems []entities.OrderItem
		orders.EXPECT().
			SaveOrderItems(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, items []entities.OrderItem) {
				savedItems = items
			}).Return(nil).Once()

		events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

		var sessionItems []entities.LineItem
		payments.EXPECT().
			CreateSession(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, orderID string, items []entities.LineItem) {
				sessionItems = items
			}).
			Return("https://pay.example.com/s/ordered", nil).Once()

		_, err := svc.Checkout(context.Background(), "store-1", []string{"p1", "p2"})
		require.NoError(t, err)

		require.Len(t, sessionItems, 2)
		assert.Equal(t, "Shirt", sessionItems[0].Name)
		assert.Equal(t, "Mug", sessionItems[1].Name)

		require.Len(t, savedItems, 2)
		assert.Equal(t, "p1", savedItems[0].ProductID)
		assert.Equal(t, "p2", savedItems[1].ProductID)
	})

	t.Run("duplicate ids produce one item each", func(t *testing.T) {
		products, orders, payments, events, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"p1", "p1"}).
			Return([]entities.Product{p1}, nil).Once()

		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()

		var savedItems []entities.OrderItem
		orders.EXPECT().
			SaveOrderItems(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, items []entities.OrderItem) {
				savedItems = items
			}).Return(nil).Once()

		events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

		var sessionItems []entities.LineItem
		payments.EXPECT().
			CreateSession(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, orderID string, items []entities.LineItem) {
				sessionItems = items
			}).
			Return("https://pay.example.com/s/dup", nil).Once()

		_, err := svc.Checkout(context.Background(), "store-1", []string{"p1", "p1"})
		require.NoError(t, err)

		assert.Len(t, savedItems, 2)
		assert.Len(t, sessionItems, 2)
	})

	t.Run("empty product ids rejected", func(t *testing.T) {
		_, _, _, _, _, svc := newCheckoutService(t)

		_, err := svc.Checkout(context.Background(), "store-1", nil)
		assert.ErrorIs(t, err, entities.ErrProductsRequired)
	})

	t.Run("unknown ids skipped from items and line items", func(t *testing.T) {
		products, orders, payments, events, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"p1", "ghost", "p2"}).
			Return([]entities.Product{p1, p2}, nil).Once()

		var savedItems []entities.OrderItem
		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
		orders.EXPECT().
			SaveOrderItems(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, items []entities.OrderItem) {
				savedItems = items
			}).Return(nil).Once()

		events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

		var sessionItems []entities.LineItem
		payments.EXPECT().
			CreateSession(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, orderID string, items []entities.LineItem) {
				sessionItems = items
			}).
			Return("https://pay.example.com/s/partial", nil).Once()

		_, err := svc.Checkout(context.Background(), "store-1", []string{"p1", "ghost", "p2"})
		require.NoError(t, err)

		require.Len(t, savedItems, 2)
		assert.Equal(t, "p1", savedItems[0].ProductID)
		assert.Equal(t, "p2", savedItems[1].ProductID)
		assert.Len(t, sessionItems, 2)
	})

	t.Run("no product resolves", func(t *testing.T) {
		products, _, _, _, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"ghost"}).
			Return([]entities.Product{}, nil).Once()

		_, err := svc.Checkout(context.Background(), "store-1", []string{"ghost"})
		assert.ErrorIs(t, err, entities.ErrNoProductsResolved)
	})

	t.Run("persistence failure aborts before payment", func(t *testing.T) {
		products, orders, _, _, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"p1"}).
			Return([]entities.Product{p1}, nil).Once()

		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError).Once()

		_, err := svc.Checkout(context.Background(), "store-1", []string{"p1"})
		assert.ErrorIs(t, err, dbError)
	})

	t.Run("provider failure leaves order persisted", func(t *testing.T) {
		products, orders, payments, events, _, svc := newCheckoutService(t)

		products.EXPECT().
			ProductsByIDs(mock.Anything, "store-1", []string{"p1"}).
			Return([]entities.Product{p1}, nil).Once()

		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
		orders.EXPECT().SaveOrderItems(mock.Anything, mock.Anything).Return(nil).Once()
		events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

		payments.EXPECT().
			CreateSession(mock.Anything, mock.Anything, mock.Anything).
			Return("", entities.ErrPaymentSession).Once()

		_, err := svc.Checkout(context.Background(), "store-1", []string{"p1"})
		assert.ErrorIs(t, err, entities.ErrPaymentSession)
		orders.AssertCalled(t, "SaveOrder", mock.Anything, mock.Anything)
	})
}

func TestCheckoutService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: "o-1", StoreID: "store-1"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	t.Run("from cache", func(t *testing.T) {
		_, _, _, _, cache, svc := newCheckoutService(t)

		cache.EXPECT().Get("store-1:o-1").Return(validData, true).Once()

		got, err := svc.GetOrderByID(context.Background(), "store-1", "o-1")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("from repo then cached", func(t *testing.T) {
		_, orders, _, _, cache, svc := newCheckoutService(t)

		cache.EXPECT().Get("store-1:o-1").Return(nil, false).Once()
		orders.EXPECT().
			GetOrderByID(mock.Anything, "store-1", "o-1").
			Return(validOrder, nil).Once()
		cache.EXPECT().Set("store-1:o-1", validData).Return().Once()

		got, err := svc.GetOrderByID(context.Background(), "store-1", "o-1")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		_, orders, _, _, cache, svc := newCheckoutService(t)

		cache.EXPECT().Get("store-1:missing").Return(nil, false).Once()
		orders.EXPECT().
			GetOrderByID(mock.Anything, "store-1", "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.GetOrderByID(context.Background(), "store-1", "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("transient repo error retried", func(t *testing.T) {
		_, orders, _, _, cache, svc := newCheckoutService(t)

		cache.EXPECT().Get("store-1:o-1").Return(nil, false).Once()
		orders.EXPECT().
			GetOrderByID(mock.Anything, "store-1", "o-1").
			Return(entities.Order{}, errors.New("temporary error")).Once()
		orders.EXPECT().
			GetOrderByID(mock.Anything, "store-1", "o-1").
			Return(validOrder, nil).Once()
		cache.EXPECT().Set("store-1:o-1", validData).Return().Once()

		got, err := svc.GetOrderByID(context.Background(), "store-1", "o-1")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})
}

func TestCheckoutService_MarkOrderPaid(t *testing.T) {
	t.Run("marks paid and publishes", func(t *testing.T) {
		_, orders, _, events, _, svc := newCheckoutService(t)

		orders.EXPECT().MarkOrderPaid(mock.Anything, "o-1").Return(nil).Once()
		events.EXPECT().OrderPaid(mock.Anything, "o-1").Return(nil).Once()

		require.NoError(t, svc.MarkOrderPaid(context.Background(), "o-1"))
	})

	t.Run("unknown order", func(t *testing.T) {
		_, orders, _, _, _, svc := newCheckoutService(t)

		orders.EXPECT().MarkOrderPaid(mock.Anything, "missing").Return(entities.ErrOrderNotFound).Once()

		err := svc.MarkOrderPaid(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("publish failure does not fail the call", func(t *testing.T) {
		_, orders, _, events, _, svc := newCheckoutService(t)

		orders.EXPECT().MarkOrderPaid(mock.Anything, "o-1").Return(nil).Once()
		events.EXPECT().OrderPaid(mock.Anything, "o-1").Return(errors.New("kafka down")).Once()

		require.NoError(t, svc.MarkOrderPaid(context.Background(), "o-1"))
	})
}
