package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves cart contents priced at current catalog prices.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. The total is the sum of the current
// hardcover prices of the books in the cart.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{Lines: make([]GetCartQueryLine, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.title,
			b.cover,
			b.price_hardcover,
			b.stock
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN books b ON b.id = ci.book_id
		WHERE c.user_id = ?
		ORDER BY b.title
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetCartQueryLine
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&line.Title,
			&line.Cover,
			&line.Price,
			&line.Stock,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		bookID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.BookID = bookID

		resp.Lines = append(resp.Lines, line)
		resp.Total = resp.Total.Add(line.Price)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return resp, nil
}
