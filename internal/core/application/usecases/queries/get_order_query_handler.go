package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the single-order query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
// Ownership checks belong to the caller, which knows who is asking.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{Lines: make([]GetOrderQueryLine, 0)}

	var userID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			customer_name,
			customer_email,
			customer_address,
			customer_phone,
			shipping_method,
			shipping_amount,
			taxes_amount,
			order_amount,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&userID,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerAddress,
		&resp.CustomerPhone,
		&resp.ShippingMethod,
		&resp.ShippingAmount,
		&resp.TaxesAmount,
		&resp.OrderAmount,
		&resp.Status,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = query.OrderID()
	resp.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.book_id,
			b.title,
			oi.quantity,
			oi.version,
			oi.unit_price
		FROM order_items oi
		JOIN books b ON b.id = oi.book_id
		WHERE oi.order_id = ?
		ORDER BY b.title
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLine
		var bookID uuid.UUID

		err = rows.Scan(
			&bookID,
			&line.Title,
			&line.Quantity,
			&line.Version,
			&line.UnitPrice,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		line.BookID, err = kernel.UUIDFromBytes(bookID[:])
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
