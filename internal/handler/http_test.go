package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/commercegate/checkout-service/internal/entities"
	"github.com/commercegate/checkout-service/internal/handler"
	"github.com/commercegate/checkout-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mocks.MockCheckoutService, chi.Router) {
	t.Helper()

	svc := mocks.NewMockCheckoutService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	handler.NewHTTPHandler(logger, svc).Init(r)
	return svc, r
}

func TestHTTPHandler_Preflight(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/store-1/checkout", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t,
		"Content-Type, Authorization, X-CSRF-Token, X-Requested-With, Accept, "+
			"Accept-Version, Content-Length, Content-MD5, Date, X-Api-Version",
		rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

func TestHTTPHandler_Preflight_NoOrigin(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/store-1/checkout", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPHandler_Checkout(t *testing.T) {
	doCheckout := func(r chi.Router, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/store-1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			Checkout(mock.Anything, "store-1", []string{"p1", "p2"}).
			Return("https://pay.example.com/s/123", nil).Once()

		rec := doCheckout(r, `{"productsIds":["p1","p2"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))

		var res handler.CheckoutResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "https://pay.example.com/s/123", res.URL)
	})

	t.Run("empty products list", func(t *testing.T) {
		_, r := newTestRouter(t)

		rec := doCheckout(r, `{"productsIds":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "El ID de los productos es requerido", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("missing products field", func(t *testing.T) {
		_, r := newTestRouter(t)

		rec := doCheckout(r, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "El ID de los productos es requerido", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("malformed body", func(t *testing.T) {
		_, r := newTestRouter(t)

		rec := doCheckout(r, `{"productsIds":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "El ID de los productos es requerido", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("no products resolved", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			Checkout(mock.Anything, "store-1", []string{"ghost"}).
			Return("", entities.ErrNoProductsResolved).Once()

		rec := doCheckout(r, `{"productsIds":["ghost"]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "products not found")
	})

	t.Run("payment provider failure", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			Checkout(mock.Anything, "store-1", []string{"p1"}).
			Return("", entities.ErrPaymentSession).Once()

		rec := doCheckout(r, `{"productsIds":["p1"]}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "payment provider unavailable")
	})

	t.Run("internal error", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			Checkout(mock.Anything, "store-1", []string{"p1"}).
			Return("", errors.New("db error")).Once()

		rec := doCheckout(r, `{"productsIds":["p1"]}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	const orderID = "3f6b1c9e-88b4-4a6e-b06f-74b45e6bff01"

	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		order := entities.Order{
			ID:        orderID,
			StoreID:   "store-1",
			Paid:      true,
			CreatedAt: time.Now().UTC(),
			Items:     []entities.OrderItem{{ID: "i1", OrderID: orderID, ProductID: "p1"}},
		}
		svc.EXPECT().
			GetOrderByID(mock.Anything, "store-1", orderID).
			Return(order, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/store-1/orders/"+orderID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res handler.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, orderID, res.ID)
		assert.True(t, res.Paid)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "p1", res.Items[0].ProductID)
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/store-1/orders/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request")
	})

	t.Run("not found", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			GetOrderByID(mock.Anything, "store-1", orderID).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/store-1/orders/"+orderID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "order not found")
	})
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			ListOrders(mock.Anything, "store-1").
			Return([]entities.Order{{ID: "o1", StoreID: "store-1"}, {ID: "o2", StoreID: "store-1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/store-1/orders", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res []handler.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Len(t, res, 2)
	})

	t.Run("empty store", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			ListOrders(mock.Anything, "store-1").
			Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/store-1/orders", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}
