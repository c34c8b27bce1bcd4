// Package checkoutrepo provides data transfer objects and mapping functions
// for staged checkout persistence. Items are stored as a JSON document: a
// staged checkout is a short-lived snapshot that is never queried by line.
package checkoutrepo

import (
	"encoding/json"
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CheckoutDTO represents the database structure for persisting staged
// checkouts.
type CheckoutDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string

	ShippingMethod string
	Items          []byte    `gorm:"type:jsonb"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (CheckoutDTO) TableName() string {
	return "checkouts"
}

// itemDoc is the JSON shape of one staged line.
type itemDoc struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
	Format   string `json:"format"`
}

// fromDomain converts a staged checkout to its database representation.
func fromDomain(aggregate *checkout.CheckoutOrder) (CheckoutDTO, error) {
	items := aggregate.Items()
	docs := make([]itemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, itemDoc{
			BookID:   item.BookID.String(),
			Quantity: item.Quantity,
			Format:   item.Format.String(),
		})
	}

	blob, err := json.Marshal(docs)
	if err != nil {
		return CheckoutDTO{}, err
	}

	customer := aggregate.Customer()
	return CheckoutDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),

		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerAddress: customer.Address,
		CustomerPhone:   customer.Phone,

		ShippingMethod: aggregate.ShippingMethod(),
		Items:          blob,
		CreatedAt:      aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a staged checkout.
func toDomain(dto CheckoutDTO) (*checkout.CheckoutOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var docs []itemDoc
	if err = json.Unmarshal(dto.Items, &docs); err != nil {
		return nil, err
	}

	items := make([]checkout.Item, 0, len(docs))
	for _, doc := range docs {
		bookID, docErr := kernel.UUIDFromString(doc.BookID)
		if docErr != nil {
			return nil, docErr
		}

		format, docErr := book.FormatFromString(doc.Format)
		if docErr != nil {
			return nil, docErr
		}

		items = append(items, checkout.Item{
			BookID:   bookID,
			Quantity: doc.Quantity,
			Format:   format,
		})
	}

	return checkout.NewCheckoutOrder(
		id,
		userID,
		order.Customer{
			Name:    dto.CustomerName,
			Email:   dto.CustomerEmail,
			Address: dto.CustomerAddress,
			Phone:   dto.CustomerPhone,
		},
		dto.ShippingMethod,
		items,
		dto.CreatedAt,
	)
}
