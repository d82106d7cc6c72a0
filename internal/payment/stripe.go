package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/commercegate/checkout-service/internal/config"
	"github.com/commercegate/checkout-service/internal/entities"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// Client requests hosted checkout sessions from Stripe. The order id is
// embedded as session metadata so the webhook can reconcile payments.
type Client struct {
	logger *slog.Logger
	cfg    config.Stripe
}

func New(logger *slog.Logger, cfg config.Stripe) *Client {
	stripe.Key = cfg.SecretKey
	return &Client{
		logger: logger.With(slog.String("component", "stripe")),
		cfg:    cfg,
	}
}

func (c *Client) CreateSession(ctx context.Context, orderID string, items []entities.LineItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.SessionTimeout)
	defer cancel()

	params := c.sessionParams(orderID, items)
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrPaymentSession, err)
	}

	c.logger.DebugContext(ctx, "checkout session created",
		slog.String("order_id", orderID), slog.String("session_id", s.ID))
	return s.URL, nil
}

func (c *Client) sessionParams(orderID string, items []entities.LineItem) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(it.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(it.Currency),
				UnitAmount: stripe.Int64(it.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:                lineItems,
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(c.cfg.StorefrontURL + "/cart?success=1"),
		CancelURL:  stripe.String(c.cfg.StorefrontURL + "/cart?canceled=1"),
	}
	params.AddMetadata("orderId", orderID)

	return params
}
