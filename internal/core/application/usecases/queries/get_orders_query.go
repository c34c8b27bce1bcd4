package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order summaries. A zero UserID means all users,
// which only staff-facing callers should request; status Unknown means all
// statuses.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query scoped to one user.
func NewGetOrdersQuery(userID kernel.UUID, status order.Status) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		userID: userID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllOrdersQuery creates an order listing query across all users.
func NewGetAllOrdersQuery(status order.Status) GetOrdersQuery {
	return GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the scoping user id; zero means all users.
func (q GetOrdersQuery) UserID() kernel.UUID { return q.userID }

// Status returns the status filter; Unknown means all statuses.
func (q GetOrdersQuery) Status() order.Status { return q.status }

// GetOrdersQueryResponse is one order summary row.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	OrderAmount  kernel.Cents
	LineCount    int
	CreatedAt    time.Time
}
