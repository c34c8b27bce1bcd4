package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAuthorStatisticsQueryHandler aggregates one author's catalog figures.
type GetAuthorStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetAuthorStatisticsQueryHandler creates a handler for author statistics.
func NewGetAuthorStatisticsQueryHandler(db *gorm.DB) GetAuthorStatisticsQueryHandler {
	return GetAuthorStatisticsQueryHandler{db: db}
}

// Handle executes the author statistics query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown authors.
func (h GetAuthorStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetAuthorStatisticsQuery,
) (GetAuthorStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAuthorStatisticsQueryResponse{}, err
	}

	var resp GetAuthorStatisticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.name,
			a.about,
			COUNT(b.id),
			COUNT(b.id) FILTER (WHERE b.best_seller),
			COALESCE(SUM(b.rating_average * b.rating_total) / NULLIF(SUM(b.rating_total), 0), 0),
			COALESCE(SUM(b.rating_total), 0)
		FROM authors a
		LEFT JOIN book_authors ba ON ba.author_id = a.id
		LEFT JOIN books b ON b.id = ba.book_id
		WHERE a.name = ?
		GROUP BY a.id, a.name, a.about
	`, query.AuthorName()).Row()

	err := row.Scan(
		&resp.AuthorName,
		&resp.About,
		&resp.TotalBooks,
		&resp.BestSellers,
		&resp.RatingAverage,
		&resp.RatingTotal,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAuthorStatisticsQueryResponse{}, errs.NewObjectNotFoundError("author", query.AuthorName())
	}
	if err != nil {
		return GetAuthorStatisticsQueryResponse{}, err
	}

	return resp, nil
}
