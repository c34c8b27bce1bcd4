package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetBookQueryIsNotConstructed = errors.New(
	"GetBookQuery must be created via NewGetBookQuery constructor",
)

// GetBookQuery retrieves the full catalog page of a single book.
type GetBookQuery struct { //nolint:recvcheck //using for validation
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookQuery creates a query for one book's details.
func NewGetBookQuery(bookID kernel.UUID) (GetBookQuery, error) {
	if err := bookID.Validate(); err != nil {
		return GetBookQuery{}, err
	}

	return GetBookQuery{
		bookID: bookID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookQuery) Validate() error {
	return q.guard.Validate(ErrGetBookQueryIsNotConstructed)
}

// BookID returns the identifier of the requested book.
func (q GetBookQuery) BookID() kernel.UUID { return q.bookID }

// GetBookQueryResponse is the complete read model of one book.
type GetBookQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Publisher     string
	PublishedDate string
	Description   string
	Type          string
	PageCount     int
	ISBN13        string
	Cover         string
	Authors       []string
	Genres        []string

	PriceHardcover kernel.Cents
	PricePaperback kernel.Cents
	PriceEbook     kernel.Cents
	PriceAudiobook kernel.Cents

	RatingAverage float64
	RatingTotal   int

	ReviewText   string
	ReviewDate   string
	ReviewAuthor string

	BestSeller bool
	Ebook      bool
	Audiobook  bool
	OnOffer    bool
	OnDisplay  bool

	Stock int
}
