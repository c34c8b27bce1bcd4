package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBookQueryHandler retrieves a single book's catalog page.
type GetBookQueryHandler struct {
	db *gorm.DB
}

// NewGetBookQueryHandler creates a handler for single-book queries.
func NewGetBookQueryHandler(db *gorm.DB) GetBookQueryHandler {
	return GetBookQueryHandler{db: db}
}

// Handle executes the single-book query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
func (h GetBookQueryHandler) Handle(
	ctx context.Context,
	query GetBookQuery,
) (GetBookQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookQueryResponse{}, err
	}

	var resp GetBookQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			title,
			publisher,
			published_date,
			description,
			type,
			page_count,
			isbn13,
			cover,
			price_hardcover,
			price_paperback,
			price_ebook,
			price_audiobook,
			rating_average,
			rating_total,
			review_text,
			review_date,
			review_author,
			best_seller,
			ebook,
			audiobook,
			on_offer,
			on_display,
			stock
		FROM books
		WHERE id = ?
	`, query.BookID().Bytes()).Row()

	err := row.Scan(
		&resp.Title,
		&resp.Publisher,
		&resp.PublishedDate,
		&resp.Description,
		&resp.Type,
		&resp.PageCount,
		&resp.ISBN13,
		&resp.Cover,
		&resp.PriceHardcover,
		&resp.PricePaperback,
		&resp.PriceEbook,
		&resp.PriceAudiobook,
		&resp.RatingAverage,
		&resp.RatingTotal,
		&resp.ReviewText,
		&resp.ReviewDate,
		&resp.ReviewAuthor,
		&resp.BestSeller,
		&resp.Ebook,
		&resp.Audiobook,
		&resp.OnOffer,
		&resp.OnDisplay,
		&resp.Stock,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBookQueryResponse{}, errs.NewObjectNotFoundError("bookID", query.BookID())
	}
	if err != nil {
		return GetBookQueryResponse{}, err
	}
	resp.ID = query.BookID()

	resp.Authors, err = h.loadNames(ctx, `
		SELECT a.name
		FROM authors a
		JOIN book_authors ba ON ba.author_id = a.id
		WHERE ba.book_id = ?
		ORDER BY a.name
	`, query)
	if err != nil {
		return GetBookQueryResponse{}, err
	}

	resp.Genres, err = h.loadNames(ctx, `
		SELECT g.name
		FROM genres g
		JOIN book_genres bg ON bg.genre_id = g.id
		WHERE bg.book_id = ?
		ORDER BY g.name
	`, query)
	if err != nil {
		return GetBookQueryResponse{}, err
	}

	return resp, nil
}

func (h GetBookQueryHandler) loadNames(ctx context.Context, sqlText string,
	query GetBookQuery) ([]string, error) {
	names := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, query.BookID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
