// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders map to two tables: the order header and one row
// per purchased line.
package orderrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its string label; amounts are integer cents. The
// customer snapshot is denormalized into the header so an order keeps the
// contact details it was placed with.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`

	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string

	ShippingMethod string
	ShippingAmount int64
	TaxesAmount    int64
	OrderAmount    int64

	Status    string `gorm:"index"`
	CreatedAt time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one purchased line of an order. Version is the
// format label the line was bought in; the unit price is the snapshot taken
// at commit time.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	Version   string
	UnitPrice int64
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	customer := aggregate.Customer()
	lines := aggregate.Lines()

	items := make([]OrderItemDTO, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			BookID:    line.BookID().Bytes(),
			Quantity:  line.Quantity(),
			Version:   line.Version(),
			UnitPrice: int64(line.UnitPrice()),
		})
	}

	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),

		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerAddress: customer.Address,
		CustomerPhone:   customer.Phone,

		ShippingMethod: aggregate.ShippingMethod(),
		ShippingAmount: int64(aggregate.ShippingAmount()),
		TaxesAmount:    int64(aggregate.TaxesAmount()),
		OrderAmount:    int64(aggregate.OrderAmount()),

		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),

		Items: items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-runs every invariant check including the amount equation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		bookID, itemErr := kernel.UUIDFromBytes(item.BookID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, itemErr := order.NewLine(bookID, item.Quantity, item.Version, kernel.Cents(item.UnitPrice))
		if itemErr != nil {
			return nil, itemErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		userID,
		order.Customer{
			Name:    dto.CustomerName,
			Email:   dto.CustomerEmail,
			Address: dto.CustomerAddress,
			Phone:   dto.CustomerPhone,
		},
		dto.ShippingMethod,
		kernel.Cents(dto.ShippingAmount),
		kernel.Cents(dto.TaxesAmount),
		kernel.Cents(dto.OrderAmount),
		status,
		lines,
		dto.CreatedAt,
	)
}
