package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const similarBooksLimit = 5

// GetSimilarBooksQueryHandler finds a book's shelf neighbours: other books
// sharing at least one genre, at most five of them.
type GetSimilarBooksQueryHandler struct {
	db *gorm.DB
}

// NewGetSimilarBooksQueryHandler creates a handler for similar book queries.
func NewGetSimilarBooksQueryHandler(db *gorm.DB) GetSimilarBooksQueryHandler {
	return GetSimilarBooksQueryHandler{db: db}
}

// Handle executes the similar books query.
// Returns an error wrapping errs.ErrObjectNotFound when the source book
// does not exist.
func (h GetSimilarBooksQueryHandler) Handle(
	ctx context.Context,
	query GetSimilarBooksQuery,
) ([]GetBooksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM books WHERE id = ?`, query.BookID().Bytes(),
	).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("bookID", query.BookID())
	}

	books := make([]GetBooksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			b.id,
			b.title,
			b.type,
			b.cover,
			b.price_hardcover,
			b.rating_average,
			b.best_seller,
			b.on_offer,
			b.stock
		FROM books b
		JOIN book_genres bg ON bg.book_id = b.id
		WHERE bg.genre_id IN (
			SELECT genre_id FROM book_genres WHERE book_id = ?
		)
		AND b.id <> ?
		ORDER BY b.title, b.id
		LIMIT ?
	`, query.BookID().Bytes(), query.BookID().Bytes(), similarBooksLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bookResp GetBooksQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&bookResp.Title,
			&bookResp.Type,
			&bookResp.Cover,
			&bookResp.PriceHardcover,
			&bookResp.RatingAverage,
			&bookResp.BestSeller,
			&bookResp.OnOffer,
			&bookResp.Stock,
		)
		if err != nil {
			return nil, err
		}

		bookID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		bookResp.ID = bookID
		books = append(books, bookResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range books {
		authors, authorsErr := h.loadAuthors(ctx, books[i].ID)
		if authorsErr != nil {
			return nil, authorsErr
		}
		books[i].Authors = authors
	}

	return books, nil
}

func (h GetSimilarBooksQueryHandler) loadAuthors(ctx context.Context, bookID kernel.UUID) ([]string, error) {
	authors := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT a.name
		FROM authors a
		JOIN book_authors ba ON ba.author_id = a.id
		WHERE ba.book_id = ?
		ORDER BY a.name
	`, bookID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		authors = append(authors, name)
	}

	return authors, rows.Err()
}
