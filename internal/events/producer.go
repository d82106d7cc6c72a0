package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/commercegate/checkout-service/internal/config"
	"github.com/commercegate/checkout-service/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderCreated = "order.created"
	TypeOrderPaid    = "order.paid"
)

type Envelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderID    string    `json:"order_id"`
	StoreID    string    `json:"store_id,omitempty"`
	ProductIDs []string  `json:"product_ids,omitempty"`
}

// Producer publishes order lifecycle events for downstream consumers.
// Messages are keyed by order id so events for one order stay ordered.
type Producer struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return &Producer{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) OrderCreated(ctx context.Context, order entities.Order) error {
	productIDs := make([]string, 0, len(order.Items))
	for _, it := range order.Items {
		productIDs = append(productIDs, it.ProductID)
	}

	return p.publish(ctx, Envelope{
		EventID:    uuid.NewString(),
		EventType:  TypeOrderCreated,
		OccurredAt: time.Now().UTC(),
		OrderID:    order.ID,
		StoreID:    order.StoreID,
		ProductIDs: productIDs,
	})
}

func (p *Producer) OrderPaid(ctx context.Context, orderID string) error {
	return p.publish(ctx, Envelope{
		EventID:    uuid.NewString(),
		EventType:  TypeOrderPaid,
		OccurredAt: time.Now().UTC(),
		OrderID:    orderID,
	})
}

func (p *Producer) publish(ctx context.Context, env Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(env.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(env.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", env.EventType, err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("type", env.EventType), slog.String("order_id", env.OrderID))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
