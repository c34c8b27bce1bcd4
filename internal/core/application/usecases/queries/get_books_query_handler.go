package queries

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBooksQueryHandler retrieves catalog pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetBooksQueryHandler struct {
	db *gorm.DB
}

// NewGetBooksQueryHandler creates a handler for catalog listing queries.
func NewGetBooksQueryHandler(db *gorm.DB) GetBooksQueryHandler {
	return GetBooksQueryHandler{db: db}
}

// Handle executes the catalog listing query.
// Filters compose with AND; the search term matches title, description and
// isbn13 substrings case-insensitively.
func (h GetBooksQueryHandler) Handle(
	ctx context.Context,
	query GetBooksQuery,
) ([]GetBooksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := buildBookFilter(query.Filter())
	orderBy := bookOrderClause(query.Filter().Sort)
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	books := make([]GetBooksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
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
		%s
		%s
		LIMIT ? OFFSET ?
	`, where, orderBy), args...).Rows()
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

func (h GetBooksQueryHandler) loadAuthors(ctx context.Context, bookID kernel.UUID) ([]string, error) {
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

// buildBookFilter renders the WHERE clause for a catalog listing.
// Returns the clause (possibly empty) and its positional arguments.
func buildBookFilter(filter BookFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Author != "" {
		conditions = append(conditions, `b.id IN (
			SELECT ba.book_id FROM book_authors ba
			JOIN authors a ON a.id = ba.author_id
			WHERE a.name = ?)`)
		args = append(args, filter.Author)
	}
	if filter.Genre != "" {
		conditions = append(conditions, `b.id IN (
			SELECT bg.book_id FROM book_genres bg
			JOIN genres g ON g.id = bg.genre_id
			WHERE g.name = ?)`)
		args = append(args, filter.Genre)
	}
	if filter.Type != "" {
		conditions = append(conditions, "b.type = ?")
		args = append(args, filter.Type)
	}
	if filter.Publisher != "" {
		conditions = append(conditions, "b.publisher = ?")
		args = append(args, filter.Publisher)
	}
	if filter.Search != "" {
		conditions = append(conditions,
			"(LOWER(b.title) LIKE ? OR LOWER(b.description) LIKE ? OR b.isbn13 LIKE ?)")
		term := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, term, term, "%"+filter.Search+"%")
	}
	if filter.BestSeller {
		conditions = append(conditions, "b.best_seller")
	}
	if filter.OnOffer {
		conditions = append(conditions, "b.on_offer")
	}
	if filter.OnDisplay {
		conditions = append(conditions, "b.on_display")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// bookOrderClause maps a validated sort name to its ORDER BY clause.
// Ties break on id so pagination stays stable.
func bookOrderClause(sort string) string {
	switch sort {
	case "rating":
		return "ORDER BY b.rating_average DESC, b.id"
	case "price":
		return "ORDER BY b.price_hardcover DESC, b.id"
	case "published_date":
		return "ORDER BY b.published_date DESC, b.id"
	default:
		return "ORDER BY b.title, b.id"
	}
}
