package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/commercegate/checkout-service/internal/entities"
	"github.com/commercegate/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// productsRequiredMessage is the contract-mandated plain-text body for an
// empty or missing product id list.
const productsRequiredMessage = "El ID de los productos es requerido"

const (
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Authorization, X-CSRF-Token, X-Requested-With, Accept, " +
		"Accept-Version, Content-Length, Content-MD5, Date, X-Api-Version"
	maxAgeSeconds = "86400"
)

type CheckoutService interface {
	Checkout(ctx context.Context, storeID string, productIDs []string) (string, error)
	GetOrderByID(ctx context.Context, storeID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, storeID string) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewHTTPHandler(logger *slog.Logger, svc CheckoutService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api/{storeId}", func(r chi.Router) {
		r.Options("/checkout", h.Preflight)
		r.Post("/checkout", h.Checkout)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{orderId}", h.GetOrderByID)
	})
}

func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Preflight answers cross-origin preflights with the fixed permissive
// header set regardless of the request's Origin content.
func (h *HTTPHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, r)
	w.Header().Set("Access-Control-Max-Age", maxAgeSeconds)
	w.WriteHeader(http.StatusOK)
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "storeId")
	writeCORS(w, r)

	start := time.Now()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		http.Error(w, productsRequiredMessage, http.StatusBadRequest)
		return
	}

	if len(req.ProductsIDs) == 0 {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		http.Error(w, productsRequiredMessage, http.StatusBadRequest)
		return
	}

	url, err := h.svc.Checkout(ctx, storeID, req.ProductsIDs)

	switch {
	case errors.Is(err, entities.ErrProductsRequired):
		checkoutsTotal.WithLabelValues("invalid").Inc()
		http.Error(w, productsRequiredMessage, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrNoProductsResolved):
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, "products not found", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrPaymentSession):
		checkoutsTotal.WithLabelValues("payment_failed").Inc()
		h.logger.ErrorContext(ctx, "payment session failed",
			slog.String("store_id", storeID), slog.Any("error", err))
		utils.WriteError(w, "payment provider unavailable", http.StatusBadGateway)
		return
	case err != nil:
		checkoutsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "checkout failed",
			slog.String("store_id", storeID), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	checkoutsTotal.WithLabelValues("created").Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())

	utils.WriteJSON(w, CheckoutResponse{URL: url}, http.StatusOK)
}

func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "storeId")
	orderID := chi.URLParam(r, "orderId")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, storeID, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "storeId")

	orders, err := h.svc.ListOrders(ctx, storeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders",
			slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func writeCORS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = "*"
	}

	header := w.Header()
	header.Set("Access-Control-Allow-Origin", origin)
	header.Set("Access-Control-Allow-Methods", allowMethods)
	header.Set("Access-Control-Allow-Headers", allowHeaders)
}
