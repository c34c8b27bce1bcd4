package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetSimilarBooksQueryIsNotConstructed = errors.New(
	"GetSimilarBooksQuery must be created via NewGetSimilarBooksQuery constructor",
)

// GetSimilarBooksQuery retrieves books sharing a genre with a given book.
type GetSimilarBooksQuery struct { //nolint:recvcheck //using for validation
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSimilarBooksQuery creates a similar books query.
func NewGetSimilarBooksQuery(bookID kernel.UUID) (GetSimilarBooksQuery, error) {
	if err := bookID.Validate(); err != nil {
		return GetSimilarBooksQuery{}, err
	}

	return GetSimilarBooksQuery{
		bookID: bookID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSimilarBooksQuery) Validate() error {
	return q.guard.Validate(ErrGetSimilarBooksQueryIsNotConstructed)
}

// BookID returns the book whose shelf neighbours are requested.
func (q GetSimilarBooksQuery) BookID() kernel.UUID { return q.bookID }
