// Package ports defines repository interfaces for the bookstore domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
)

// BookRepository defines the persistence contract for book aggregates.
type BookRepository interface {
	// Add persists a new book aggregate to storage.
	// The book must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *book.Book) error

	// Update persists changes to an existing book aggregate.
	Update(ctx context.Context, aggregate *book.Book) error

	// Get retrieves a book aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// GetForUpdate retrieves book aggregates by id with row-level locks held
	// for the remainder of the current transaction. Rows are locked in
	// ascending id order so concurrent callers acquire locks in the same
	// sequence and cannot deadlock each other.
	//
	// Every id must exist; a missing id fails the whole call.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*book.Book, error)
}
