// Package rabbit publishes order lifecycle events to RabbitMQ. Events are
// informational fan-out for downstream consumers (notifications, analytics);
// the order transaction has already committed by the time they are sent.
package rabbit

import (
	"context"
	"encoding/json"
	"time"

	"bookstore/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	orderCreatedEvent       = "order.created"
	orderStatusChangedEvent = "order.status_changed"
)

// orderEventDoc is the wire shape of an order event.
type orderEventDoc struct {
	EventType      string `json:"event_type"`
	OrderID        string `json:"order_id"`
	UserID         string `json:"user_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
	OrderAmount    int64  `json:"order_amount"`
	OccurredAt     string `json:"occurred_at"`
}

// OrderEventPublisher sends order events to a fanout exchange.
type OrderEventPublisher struct {
	channel  *amqp.Channel
	exchange string
}

// NewOrderEventPublisher declares the exchange and returns a publisher
// bound to it.
func NewOrderEventPublisher(conn *amqp.Connection, exchange string) (*OrderEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &OrderEventPublisher{channel: ch, exchange: exchange}, nil
}

// PublishOrderCreated announces a freshly committed order.
func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, orderEventDoc{
		EventType:   orderCreatedEvent,
		OrderID:     aggregate.ID().String(),
		UserID:      aggregate.UserID().String(),
		Status:      aggregate.Status().String(),
		OrderAmount: int64(aggregate.OrderAmount()),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishOrderStatusChanged announces a status transition.
func (p *OrderEventPublisher) PublishOrderStatusChanged(
	ctx context.Context, aggregate *order.Order, previous order.Status,
) error {
	return p.publish(ctx, orderEventDoc{
		EventType:      orderStatusChangedEvent,
		OrderID:        aggregate.ID().String(),
		UserID:         aggregate.UserID().String(),
		Status:         aggregate.Status().String(),
		PreviousStatus: previous.String(),
		OrderAmount:    int64(aggregate.OrderAmount()),
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *OrderEventPublisher) publish(ctx context.Context, doc orderEventDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		"", // routing key; fanout ignores it
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
		},
	)
}

// Close releases the channel. The connection stays with the caller.
func (p *OrderEventPublisher) Close() error {
	return p.channel.Close()
}
