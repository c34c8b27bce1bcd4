// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetBooksQueryIsNotConstructed = errors.New(
		"GetBooksQuery must be created via NewGetBooksQuery constructor",
	)
	ErrPageIsInvalid = errors.New("page and page size must be positive")
	ErrSortIsInvalid = errors.New("sort must be one of rating, price, published_date")
)

const defaultPageSize = 20

// BookFilter narrows a catalog listing. Zero values mean "no constraint".
// Search matches title, description and isbn13. Sort orders by rating,
// price or published_date (descending); empty sorts by title.
type BookFilter struct {
	Author     string
	Genre      string
	Type       string
	Publisher  string
	Search     string
	Sort       string
	BestSeller bool
	OnOffer    bool
	OnDisplay  bool
}

var allowedSorts = map[string]bool{
	"":               true,
	"rating":         true,
	"price":          true,
	"published_date": true,
}

// GetBooksQuery retrieves a page of the catalog, optionally filtered.
//
// Example:
//
//	query, err := NewGetBooksQuery(BookFilter{Genre: "Fantasy"}, 1, 20)
//	if err != nil {
//	    return err
//	}
//	books, err := NewGetBooksQueryHandler(db).Handle(ctx, query)
type GetBooksQuery struct { //nolint:recvcheck //using for validation
	filter   BookFilter
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetBooksQuery creates a catalog listing query. Page numbering starts
// at 1; pageSize 0 falls back to the default page size.
func NewGetBooksQuery(filter BookFilter, page, pageSize int) (GetBooksQuery, error) {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 || pageSize < 1 {
		return GetBooksQuery{}, ErrPageIsInvalid
	}
	if !allowedSorts[filter.Sort] {
		return GetBooksQuery{}, ErrSortIsInvalid
	}

	return GetBooksQuery{
		filter:   filter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBooksQuery) Validate() error {
	return q.guard.Validate(ErrGetBooksQueryIsNotConstructed)
}

// Filter returns the listing constraints.
func (q GetBooksQuery) Filter() BookFilter { return q.filter }

// Page returns the 1-based page number.
func (q GetBooksQuery) Page() int { return q.page }

// PageSize returns the number of rows per page.
func (q GetBooksQuery) PageSize() int { return q.pageSize }

// GetBooksQueryResponse is one catalog listing row.
type GetBooksQueryResponse struct {
	ID             kernel.UUID
	Title          string
	Type           string
	Cover          string
	Authors        []string
	PriceHardcover kernel.Cents
	RatingAverage  float64
	BestSeller     bool
	OnOffer        bool
	Stock          int
}
