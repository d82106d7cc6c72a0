package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/commercegate/checkout-service/internal/entities"
	"github.com/commercegate/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const maxWebhookBody = 64 << 10

type OrderPayer interface {
	MarkOrderPaid(ctx context.Context, orderID string) error
}

// WebhookHandler consumes Stripe's signed events and flips the paid flag on
// completed checkout sessions. It is the only writer of Order.Paid.
type WebhookHandler struct {
	logger *slog.Logger
	secret string
	svc    OrderPayer
}

func NewWebhookHandler(logger *slog.Logger, secret string, svc OrderPayer) *WebhookHandler {
	return &WebhookHandler{
		logger: logger.With(slog.String("handler", "webhook")),
		secret: secret,
		svc:    svc,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/api/webhook", h.HandleEvent)
}

func (h *WebhookHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		webhookEventsTotal.WithLabelValues("rejected").Inc()
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.secret)
	if err != nil {
		webhookEventsTotal.WithLabelValues("rejected").Inc()
		h.logger.WarnContext(ctx, "webhook signature verification failed", slog.Any("error", err))
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
		return
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		webhookEventsTotal.WithLabelValues("ignored").Inc()
		w.WriteHeader(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		webhookEventsTotal.WithLabelValues("rejected").Inc()
		h.logger.ErrorContext(ctx, "failed to parse session payload", slog.Any("error", err))
		utils.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	orderID := session.Metadata["orderId"]
	if orderID == "" {
		webhookEventsTotal.WithLabelValues("rejected").Inc()
		utils.WriteError(w, "missing orderId metadata", http.StatusBadRequest)
		return
	}

	err = h.svc.MarkOrderPaid(ctx, orderID)

	// Unknown order: acknowledge anyway, retrying would never succeed.
	if errors.Is(err, entities.ErrOrderNotFound) {
		webhookEventsTotal.WithLabelValues("unknown_order").Inc()
		h.logger.WarnContext(ctx, "webhook for unknown order", slog.String("order_id", orderID))
		w.WriteHeader(http.StatusOK)
		return
	}

	if err != nil {
		webhookEventsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to mark order paid",
			slog.String("order_id", orderID), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	webhookEventsTotal.WithLabelValues("processed").Inc()
	w.WriteHeader(http.StatusOK)
}
