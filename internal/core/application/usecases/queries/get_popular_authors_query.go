package queries

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetPopularAuthorsQueryIsNotConstructed = errors.New(
	"GetPopularAuthorsQuery must be created via NewGetPopularAuthorsQuery constructor",
)

// GetPopularAuthorsQuery lists a genre's most published authors.
type GetPopularAuthorsQuery struct { //nolint:recvcheck //using for validation
	genreName string

	guard guard.ConstructorGuard
}

// NewGetPopularAuthorsQuery creates a popular authors query.
func NewGetPopularAuthorsQuery(genreName string) (GetPopularAuthorsQuery, error) {
	if genreName == "" {
		return GetPopularAuthorsQuery{}, errs.NewValueIsRequiredError("genreName")
	}

	return GetPopularAuthorsQuery{
		genreName: genreName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPopularAuthorsQuery) Validate() error {
	return q.guard.Validate(ErrGetPopularAuthorsQueryIsNotConstructed)
}

// GenreName returns the genre whose authors are requested.
func (q GetPopularAuthorsQuery) GenreName() string { return q.genreName }

// GetPopularAuthorsQueryResponse is one row of the popular authors read model.
// Books counts the author's titles within the genre.
type GetPopularAuthorsQueryResponse struct {
	Name          string
	Books         int
	RatingAverage float64
}
