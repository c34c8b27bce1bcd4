package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryLine is one purchased line in the order read model.
type GetOrderQueryLine struct {
	BookID    kernel.UUID
	Title     string
	Quantity  int
	Version   string
	UnitPrice kernel.Cents
}

// GetOrderQueryResponse is the complete read model of one order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string
	ShippingMethod  string
	ShippingAmount  kernel.Cents
	TaxesAmount     kernel.Cents
	OrderAmount     kernel.Cents
	Status          string
	Lines           []GetOrderQueryLine
	CreatedAt       time.Time
}
