package queries

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetAuthorStatisticsQueryIsNotConstructed = errors.New(
	"GetAuthorStatisticsQuery must be created via NewGetAuthorStatisticsQuery constructor",
)

// GetAuthorStatisticsQuery aggregates catalog figures for one author.
type GetAuthorStatisticsQuery struct { //nolint:recvcheck //using for validation
	authorName string

	guard guard.ConstructorGuard
}

// NewGetAuthorStatisticsQuery creates an author statistics query.
func NewGetAuthorStatisticsQuery(authorName string) (GetAuthorStatisticsQuery, error) {
	if authorName == "" {
		return GetAuthorStatisticsQuery{}, errs.NewValueIsRequiredError("authorName")
	}

	return GetAuthorStatisticsQuery{
		authorName: authorName,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuthorStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAuthorStatisticsQueryIsNotConstructed)
}

// AuthorName returns the author whose figures are requested.
func (q GetAuthorStatisticsQuery) AuthorName() string { return q.authorName }

// GetAuthorStatisticsQueryResponse is the author statistics read model.
// RatingAverage is weighted by each book's rating count.
type GetAuthorStatisticsQueryResponse struct {
	AuthorName    string
	About         string
	TotalBooks    int
	BestSellers   int
	RatingAverage float64
	RatingTotal   int
}
