package ports

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

// OrderEventPublisher pushes order lifecycle events to the message broker.
// Publishing is best effort: a broker failure must not roll back the
// transaction that produced the event.
type OrderEventPublisher interface {
	// PublishOrderCreated announces a freshly committed order.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces a status transition.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) error
}
