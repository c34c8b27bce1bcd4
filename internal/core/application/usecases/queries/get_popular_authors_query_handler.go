package queries

import (
	"context"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

const popularAuthorsLimit = 5

// GetPopularAuthorsQueryHandler ranks a genre's authors by how many titles
// they have in it.
type GetPopularAuthorsQueryHandler struct {
	db *gorm.DB
}

// NewGetPopularAuthorsQueryHandler creates a handler for popular author queries.
func NewGetPopularAuthorsQueryHandler(db *gorm.DB) GetPopularAuthorsQueryHandler {
	return GetPopularAuthorsQueryHandler{db: db}
}

// Handle executes the popular authors query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown genres.
func (h GetPopularAuthorsQueryHandler) Handle(
	ctx context.Context,
	query GetPopularAuthorsQuery,
) ([]GetPopularAuthorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM genres WHERE name = ?`, query.GenreName(),
	).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("genre", query.GenreName())
	}

	authors := make([]GetPopularAuthorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.name,
			COUNT(DISTINCT b.id),
			COALESCE(AVG(b.rating_average), 0)
		FROM authors a
		JOIN book_authors ba ON ba.author_id = a.id
		JOIN books b ON b.id = ba.book_id
		JOIN book_genres bg ON bg.book_id = b.id
		JOIN genres g ON g.id = bg.genre_id
		WHERE g.name = ?
		GROUP BY a.id, a.name
		ORDER BY COUNT(DISTINCT b.id) DESC, a.name
		LIMIT ?
	`, query.GenreName(), popularAuthorsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var author GetPopularAuthorsQueryResponse

		err = rows.Scan(&author.Name, &author.Books, &author.RatingAverage)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}

	return authors, rows.Err()
}
